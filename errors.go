package flycam

import "github.com/pkg/errors"

var (
	// ErrNotImplemented is returned whenever the orbit camera mode is
	// constructed or updated. Orbit never falls back to FPS behavior.
	ErrNotImplemented = errors.New("flycam: orbit camera mode is not implemented")

	// ErrZeroForward is returned when a camera is built with a zero-length
	// forward direction.
	ErrZeroForward = errors.New("flycam: forward direction must be non-zero")

	// ErrDegenerateForward is returned when the forward direction is parallel
	// to world up, which leaves yaw undefined and the right vector zero.
	ErrDegenerateForward = errors.New("flycam: forward direction is parallel to world up")

	// ErrInvalidAspect is returned when a camera is built with an aspect
	// ratio that is not a finite positive number.
	ErrInvalidAspect = errors.New("flycam: aspect ratio must be finite and positive")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("flycam: invalid config")
)
