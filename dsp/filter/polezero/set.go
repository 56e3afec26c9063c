package polezero

import (
	"fmt"

	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// MaxPZ is the largest number of poles or zeros a set may hold.
const MaxPZ = 64

// Tag classifies a stored root.
type Tag uint8

const (
	// Single is a lone real root.
	Single Tag = iota + 1
	// PairFirst holds one member of a conjugate pair; the conjugate is implied.
	PairFirst
	// PairSecond is the placeholder slot after PairFirst. Its value is unused.
	PairSecond
)

func (t Tag) String() string {
	switch t {
	case Single:
		return "Single"
	case PairFirst:
		return "PairFirst"
	case PairSecond:
		return "PairSecond"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Root is one entry of a pole or zero list.
type Root struct {
	Value complex128
	Tag   Tag
}

// Set is a list of poles and a list of zeros, either in the s-plane or,
// after Bilinear or MatchedZ, in the z-plane.
type Set struct {
	Poles []Root
	Zeros []Root
}

// step returns the number of slots r occupies.
func step(r Root) int {
	if r.Tag == Single {
		return 1
	}
	return 2
}

// mapRoots applies fn once per stored root, skipping PairSecond slots.
func mapRoots(roots []Root, fn func(Root) complex128) {
	for a := 0; a < len(roots); a += step(roots[a]) {
		roots[a].Value = fn(roots[a])
	}
}

func pair(v complex128) []Root {
	return []Root{{Value: v, Tag: PairFirst}, {Tag: PairSecond}}
}

func checkOrder(order int) error {
	if order <= 0 {
		return fiderr.Specf("bad filter order %d", order)
	}
	return nil
}
