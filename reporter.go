package esio

import "github.com/go-esio/esio/internal/reporter"

// SetReporter installs the default diagnostic reporter, which writes
// through the standard logger.
func SetReporter() { reporter.Set() }

// SetReporterOff silences all diagnostics.
func SetReporterOff() { reporter.SetOff() }

// SetReporterFunc installs a caller-supplied diagnostic callback, which
// receives a Kind (as an int, since kinds are encoded as positive integers)
// and a format string with its arguments. esio's own operations return
// their failures as errors and do not pass them to the reporter.
func SetReporterFunc(fn func(kind int, format string, args []interface{})) {
	reporter.SetCustom(fn)
}
