package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidParameter signals a caller-supplied parameter outside its
	// defined domain (unknown test variant, tails not 1/2, alpha outside
	// (0,1), degrees of freedom <= 0).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidSample signals a sample that violates size or shape
	// preconditions (fewer than 3 observations).
	ErrInvalidSample = errors.New("invalid sample")

	// ErrDegenerateSample signals a zero-variance sample, for which the
	// Grubbs statistic is mathematically undefined.
	ErrDegenerateSample = errors.New("degenerate sample")

	ErrReportNotFound = errors.New("report not found")
)

// Error constructors with context
func NewInvalidParameterError(name string, value interface{}, reason string) error {
	return fmt.Errorf("%w: %s=%v: %s", ErrInvalidParameter, name, value, reason)
}

func NewInvalidSampleError(size int, reason string) error {
	return fmt.Errorf("%w: n=%d: %s", ErrInvalidSample, size, reason)
}

func NewDegenerateSampleError(size int) error {
	return fmt.Errorf("%w: all %d observations are identical (zero standard deviation)", ErrDegenerateSample, size)
}

// Error checking helpers
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsInvalidSample(err error) bool {
	return errors.Is(err, ErrInvalidSample)
}

func IsDegenerateSample(err error) bool {
	return errors.Is(err, ErrDegenerateSample)
}

func IsReportNotFound(err error) bool {
	return errors.Is(err, ErrReportNotFound)
}
