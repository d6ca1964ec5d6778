package inpaint

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoDetectBottomRightPlacement(t *testing.T) {
	sel := AutoDetect(400, 300)
	assert.Equal(t, Selection{X: 200, Y: 220, Width: 180, Height: 60}, sel,
		"heuristic should anchor 200px left and 80px up from the bottom-right corner")
}

func TestAutoDetectSmallImage(t *testing.T) {
	sel := AutoDetect(100, 50)
	assert.Equal(t, 0, sel.X, "x should clamp to 0 when the image is narrower than the offset")
	assert.Equal(t, 0, sel.Y, "y should clamp to 0 when the image is shorter than the offset")
	assert.Equal(t, 100, sel.Width, "width should clamp to the image width")
	assert.Equal(t, 50, sel.Height, "height should clamp to the image height")
	assert.False(t, sel.Empty())
}

func TestSelectionClamp(t *testing.T) {
	sel := Selection{X: 300, Y: -10, Width: 180, Height: 60}.Clamp(400, 300)
	assert.Equal(t, Selection{X: 300, Y: 0, Width: 100, Height: 50}, sel,
		"clamping should trim the rectangle to the image on every side")
}

func TestSelectionClampNoOverlapIsDegenerate(t *testing.T) {
	sel := Selection{X: 500, Y: 500, Width: 50, Height: 50}.Clamp(400, 300)
	assert.True(t, sel.Empty(), "a selection entirely outside the image should clamp to zero area")
}

func TestSelectionClampNegativeDimensionsStayDegenerate(t *testing.T) {
	sel := Selection{X: 60, Y: 60, Width: -30, Height: -30}.Clamp(100, 100)
	assert.True(t, sel.Empty(), "negative dimensions must not canonicalize into a flipped rectangle")
	assert.Equal(t, 0, sel.Width)
	assert.Equal(t, 0, sel.Height)
}

func TestSelectionEmpty(t *testing.T) {
	assert.True(t, Selection{Width: 0, Height: 10}.Empty())
	assert.True(t, Selection{Width: 10, Height: -1}.Empty())
	assert.False(t, Selection{Width: 1, Height: 1}.Empty())
}

func TestSelectionContains(t *testing.T) {
	sel := Selection{X: 10, Y: 20, Width: 5, Height: 5}
	assert.True(t, sel.Contains(10, 20))
	assert.True(t, sel.Contains(14, 24))
	assert.False(t, sel.Contains(15, 20), "x+width is exclusive")
	assert.False(t, sel.Contains(9, 20))
}

func TestSelectionRect(t *testing.T) {
	sel := Selection{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, image.Rect(1, 2, 4, 6), sel.Rect())
}

func TestResolve(t *testing.T) {
	user := Selection{X: 5, Y: 5, Width: 10, Height: 10}

	got := Resolve(400, 300, &user, Options{})
	assert.Equal(t, user, got, "a valid user rectangle should pass through clamping unchanged")

	got = Resolve(400, 300, nil, Options{})
	assert.Equal(t, AutoDetect(400, 300), got, "nil user rectangle falls back to the heuristic")

	got = Resolve(400, 300, &user, Options{AutoDetect: true})
	assert.Equal(t, AutoDetect(400, 300), got, "AutoDetect overrides the user rectangle")
}
