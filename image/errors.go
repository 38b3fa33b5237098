package image

import "fmt"

// ConfigurationError reports an invalid render configuration: a
// non-positive module count, a negative border or box size, or a drawer
// alias that is not present in the backend's registry. It is always
// returned from a constructor, never after drawing has started.
type ConfigurationError struct {
	message string
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.message
}

// CapabilityError reports that a drawer alias was requested on a backend
// that has no drawer registry at all. It is surfaced at construction,
// before any pixel is drawn.
type CapabilityError struct {
	message string
}

func NewCapabilityError(format string, args ...any) *CapabilityError {
	return &CapabilityError{message: fmt.Sprintf(format, args...)}
}

func (e *CapabilityError) Error() string {
	return e.message
}
