package fid

import (
	"fmt"

	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// Error categories. Every error returned by this package wraps exactly one
// of them; use errors.Is to tell them apart.
var (
	// ErrSpec reports a malformed, unknown or out-of-range filter spec.
	ErrSpec = fiderr.ErrSpec

	// ErrCapacity reports an order or argument count beyond a fixed limit.
	ErrCapacity = fiderr.ErrCapacity

	// ErrConvergence reports that exact-response calibration failed.
	ErrConvergence = fiderr.ErrConvergence

	// ErrInternal reports a broken internal invariant. It indicates a
	// defect, not bad input.
	ErrInternal = fiderr.ErrInternal
)

// ErrCoefficientCount is returned by DesignCoefficients when the caller's
// expected count does not match the design. It also matches ErrSpec.
var ErrCoefficientCount = fmt.Errorf("%w: wrong number of coefficients", fiderr.ErrSpec)
