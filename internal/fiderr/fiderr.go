// Package fiderr defines the error categories shared by the filter design
// packages.
//
// User-facing problems (a bad spec string, too many poles, a calibration
// that does not converge) are kept apart from internal invariant
// violations, which indicate a defect rather than bad input.
package fiderr

import (
	"errors"
	"fmt"
)

var (
	// ErrSpec reports a malformed or unsupported filter specification.
	ErrSpec = errors.New("fid: bad filter spec")

	// ErrCapacity reports that a fixed pole/zero or argument limit was exceeded.
	ErrCapacity = errors.New("fid: capacity exceeded")

	// ErrConvergence reports that exact-response calibration failed.
	ErrConvergence = errors.New("fid: calibration failed")

	// ErrInternal reports a broken internal invariant.
	ErrInternal = errors.New("fid: internal error")
)

// Specf wraps ErrSpec with a formatted message.
func Specf(format string, args ...any) error {
	return wrap(ErrSpec, format, args...)
}

// Capacityf wraps ErrCapacity with a formatted message.
func Capacityf(format string, args ...any) error {
	return wrap(ErrCapacity, format, args...)
}

// Convergencef wraps ErrConvergence with a formatted message.
func Convergencef(format string, args ...any) error {
	return wrap(ErrConvergence, format, args...)
}

// Internalf wraps ErrInternal with a formatted message.
func Internalf(format string, args ...any) error {
	return wrap(ErrInternal, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
