package filter

import "github.com/pkg/errors"

// ConfigError reports an unknown option or a malformed/colliding
// configuration — a separator that collides with a literal character a
// requested variable kind or format string needs — discovered before
// any input is read.
type ConfigError struct {
	Message string
	cause   error
}

func (e *ConfigError) Error() string { return e.cause.Error() }
func (e *ConfigError) Cause() error  { return e.cause }

func newConfigError(format string, args ...interface{}) *ConfigError {
	err := errors.Errorf(format, args...)
	return &ConfigError{Message: err.Error(), cause: err}
}

// NewConfigError wraps an externally constructed error (e.g. a
// malformed format string reported by the value package, or a rejected
// command-line flag) as a ConfigError, so the error carries the
// ConfigError type regardless of which layer detected the problem.
func NewConfigError(cause error) *ConfigError {
	return &ConfigError{Message: cause.Error(), cause: cause}
}

// IoError wraps a failure reading input or writing output.
type IoError struct {
	cause error
}

func (e *IoError) Error() string { return e.cause.Error() }
func (e *IoError) Cause() error  { return e.cause }

func newIoError(cause error) *IoError {
	return &IoError{cause: errors.Wrap(cause, "io error")}
}
