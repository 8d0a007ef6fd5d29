package core

import (
	"errors"
	"fmt"
)

// Numeric tolerances shared by the kernel
const (
	// Epsilon guards divisions and degenerate-length checks
	Epsilon = 1e-12
	// UnitTolerance is the allowed deviation of a ray direction from unit length
	UnitTolerance = 1e-9
	// TangentEpsilon is the relative tolerance under which a sphere hit collapses to a single tangent point
	TangentEpsilon = 1e-9
	// ShadowBias offsets shadow ray origins off the surface to avoid self-intersection
	ShadowBias = 1e-6
)

var (
	// ErrDegenerateVector is returned when a vector cannot be normalized
	ErrDegenerateVector = errors.New("degenerate vector")
	// ErrConfiguration marks invalid scene, camera or primitive configuration.
	// It is fatal and raised before any pixel is rendered.
	ErrConfiguration = errors.New("configuration error")
)

// ConfigurationError describes which setting was rejected and why
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error // optional underlying cause
}

// NewConfigurationError creates a ConfigurationError for a field
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is match ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
