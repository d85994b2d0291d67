package encoding

import "math/bits"

const (
	// StartWidth is the running bit width at the start of every block sequence.
	StartWidth = 8

	// MaxWidth is the widest value the packer can store.
	MaxWidth = 30

	// MaxValue is the largest value accepted by the packer.
	MaxValue = 1<<MaxWidth - 1

	selectorBits = 4
	maxSpan      = 4
	escape       = 0
)

type selector struct {
	widthDelta int
	span       int
}

var selectors = [1 << selectorBits]selector{
	{0, 1},
	{-4, 1},
	{-2, 1}, {-2, 2},
	{-1, 1}, {-1, 2}, {-1, 4},
	{0, 1}, {0, 2}, {0, 4},
	{1, 1}, {1, 2}, {1, 4},
	{2, 1}, {2, 2},
	{4, 1},
}

// apply returns the running width after selector idx.
func (s selector) apply(idx int, width int) int {
	if idx == escape {
		return MaxWidth
	}

	return width + s.widthDelta
}

func bitWidth(v uint32) int {
	return bits.Len32(v)
}

// chooseSelector picks the densest selector for the buffered values given the
// current running width. widths holds the bit widths of 1 to 4 buffered values.
//
// A selector scores (span-1)*4 minus the bits it wastes; the baseline lets any
// fitting selector beat the escape. Ties keep the lowest index.
func chooseSelector(width int, widths []int) int {
	best := escape
	bestScore := widths[0] - MaxWidth

	for i := 1; i < len(selectors); i++ {
		s := selectors[i]
		if s.span > len(widths) {
			continue
		}

		w := width + s.widthDelta
		if w < 0 || w > MaxWidth {
			continue
		}

		fits := true
		waste := 0
		for _, bw := range widths[:s.span] {
			if bw > w {
				fits = false
				break
			}
			waste += w - bw
		}

		if !fits {
			continue
		}

		if score := (s.span-1)*4 - waste; score > bestScore {
			best = i
			bestScore = score
		}
	}

	return best
}
