package iatime

import (
	"sync/atomic"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
	mdwlog "github.com/msto63/iadate/foundation/core/log"
)

var pkgLogger atomic.Pointer[mdwlog.Logger]

// SetLogger sets the logger used for warnings. Passing nil restores the
// package default logger.
func SetLogger(l *mdwlog.Logger) {
	pkgLogger.Store(l)
}

func logger() *mdwlog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return mdwlog.GetDefault()
}

func malformedInput(op, input string, cause error) error {
	return mdwerror.Wrap(cause, "malformed date input").
		WithCode(mdwerror.CodeMalformedInput).
		WithOperation(op).
		WithDetail("input", input)
}

// unsupportedUnit builds an UnsupportedUnit error and logs it as a warning
func unsupportedUnit(op, unit string) error {
	logger().Warn("unsupported unit", mdwlog.Fields{
		"operation": op,
		"unit":      unit,
	})
	return mdwerror.Newf("unit %q is not supported here", unit).
		WithCode(mdwerror.CodeUnsupportedUnit).
		WithOperation(op).
		WithDetail("unit", unit)
}

func unparsablePhrase(phrase string) error {
	return mdwerror.Newf("cannot compact relative phrase %q", phrase).
		WithCode(mdwerror.CodeUnparsablePhrase).
		WithOperation("iatime.CompactPhrase").
		WithDetail("phrase", phrase)
}

// IsMalformedInput reports whether err is a construction error from bad input
func IsMalformedInput(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeMalformedInput)
}

// IsUnsupportedUnit reports whether err was caused by a unit or field without support
func IsUnsupportedUnit(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnsupportedUnit)
}

// IsUnparsablePhrase reports whether err came from a relative phrase that could not be compacted
func IsUnparsablePhrase(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnparsablePhrase)
}
