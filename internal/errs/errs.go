// Package errs defines the status-kind taxonomy shared by every layer of
// esio (handle lifecycle, metadata, layout, restart rotation) so that a
// caller can inspect *why* an operation failed without string matching.
package errs

import "golang.org/x/xerrors"

// Kind is a status code. Zero is reserved for success and is never wrapped
// in an Error.
type Kind int

const (
	// EINVAL marks invalid arguments: nulls, unopened files, out-of-range
	// shapes, stride/component mismatches, overwrite conflicts.
	EINVAL Kind = iota + 1
	// EFAILED marks a failure reported by the substrate or filesystem:
	// create/open/close/read/write/flush, rename, stat.
	EFAILED
	// ENOMEM marks allocation failure (buffer growth, handle allocation).
	ENOMEM
	// ESANITY marks an internal-invariant violation: a metadata probe
	// over-read, an unknown layout tag, an unsupported element kind, a
	// registry self-check failure.
	ESANITY
	// EFAULT marks a caller fault with no recovery: null where non-null is
	// required at a boundary.
	EFAULT
)

func (k Kind) String() string {
	switch k {
	case EINVAL:
		return "EINVAL"
	case EFAILED:
		return "EFAILED"
	case ENOMEM:
		return "ENOMEM"
	case ESANITY:
		return "ESANITY"
	case EFAULT:
		return "EFAULT"
	default:
		return "EUNKNOWN"
	}
}

// Error pairs a Kind with a wrapped cause so %w chains and errors.As keep
// working through every layer that returns one of these.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// New builds an Error of the given Kind from a format string, using
// xerrors.Errorf for frame-capturing %w wrapping.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, err: xerrors.Errorf(format, args...)}
}

// Wrap attaches a Kind to an existing error without discarding it.
func Wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: err}
}

// As reports whether err (or something it wraps) is an *Error and, if so,
// returns its Kind.
func As(err error) (Kind, bool) {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
