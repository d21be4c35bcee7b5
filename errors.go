package sundae

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnknownBackground is wrapped by the ConfigurationError returned for
	// a background outside the enumerated set.
	ErrUnknownBackground = errors.New("sundae: unknown background")

	// ErrNotImage is returned by the loaders when a resource exists but its
	// content is not a recognised image format.
	ErrNotImage = errors.New("sundae: not an image")
)

// ConfigurationError reports a view that cannot be built because its inputs
// are invalid. It is the only error New returns.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("sundae: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("sundae: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ImageResolutionError reports an image that could not be read or decoded.
// Layer is empty for the background.
type ImageResolutionError struct {
	Layer string
	Path  string
	Err   error
}

func (e *ImageResolutionError) Error() string {
	what := e.Layer
	if what == "" {
		what = "background"
	}
	return fmt.Sprintf("sundae: resolve %s image %q: %v", what, e.Path, e.Err)
}

func (e *ImageResolutionError) Unwrap() error { return e.Err }
