package fiderr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesAreDistinct(t *testing.T) {
	kinds := []error{ErrSpec, ErrCapacity, ErrConvergence, ErrInternal}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestWrapKeepsCategoryAndMessage(t *testing.T) {
	err := Specf("bad order %d in %q", 0, "LpBu0/20")
	assert.ErrorIs(t, err, ErrSpec)
	assert.False(t, errors.Is(err, ErrInternal))
	assert.Equal(t, `fid: bad filter spec: bad order 0 in "LpBu0/20"`, err.Error())

	assert.ErrorIs(t, Capacityf("x"), ErrCapacity)
	assert.ErrorIs(t, Convergencef("x"), ErrConvergence)
	assert.ErrorIs(t, Internalf("x"), ErrInternal)
}
