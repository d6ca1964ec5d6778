package inpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceFieldValues(t *testing.T) {
	f := newDistanceField(Selection{X: 100, Y: 100, Width: 5, Height: 4})

	assert.Equal(t, 0, f.at(0, 0), "corners are boundary pixels")
	assert.Equal(t, 0, f.at(4, 3))
	assert.Equal(t, 0, f.at(2, 0), "edge pixels are boundary pixels")
	assert.Equal(t, 1, f.at(2, 1), "one step in from every edge")
	assert.Equal(t, 1, f.at(1, 2))
	assert.Equal(t, 1, f.max, "a 5x4 selection erodes in a single interior layer")
}

func TestDistanceFieldSquare(t *testing.T) {
	f := newDistanceField(Selection{Width: 7, Height: 7})
	assert.Equal(t, 3, f.max)
	assert.Equal(t, 3, f.at(3, 3), "the center of a 7x7 selection is 3 edges away")
	assert.Equal(t, 2, f.at(2, 3))
}

func TestDistanceFieldThinSelection(t *testing.T) {
	f := newDistanceField(Selection{Width: 9, Height: 1})
	assert.Equal(t, 0, f.max, "a 1-pixel-thin selection has only the boundary layer")
	for lx := 0; lx < 9; lx++ {
		assert.Equal(t, 0, f.at(lx, 0))
	}
}

func TestDistanceFieldSinglePixel(t *testing.T) {
	f := newDistanceField(Selection{Width: 1, Height: 1})
	assert.Equal(t, 0, f.max)
	assert.Equal(t, 0, f.at(0, 0))
}
