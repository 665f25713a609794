package esio

import "github.com/go-esio/esio/internal/errs"

// Kind is a status code returned alongside an error. Zero is reserved for
// success.
type Kind = errs.Kind

// Error is the concrete error type every esio operation returns on
// failure; it wraps its cause so errors.Is/errors.As keep working.
type Error = errs.Error

const (
	EINVAL  = errs.EINVAL
	EFAILED = errs.EFAILED
	ENOMEM  = errs.ENOMEM
	ESANITY = errs.ESANITY
	EFAULT  = errs.EFAULT
)

// KindOf reports the Kind carried by err, if err is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	return errs.As(err)
}
