package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_Symmetric(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 32, 32),
		NewRect(31.9, 0, 32, 32),
		NewRect(32, 0, 32, 32),
		NewRect(10, 10, 5, 5),
		NewRect(-20, -20, 25, 25),
		NewRect(100, 100, 6, 10),
	}
	for _, a := range rects {
		for _, b := range rects {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestOverlaps_Self(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 1, 1), NewRect(-5, 7, 28.8, 28.8), NewRect(3, 3, 10, 6)} {
		assert.True(t, Overlaps(r, r))
	}
}

func TestOverlaps_EdgeTouchingIsNotCollision(t *testing.T) {
	a := NewRect(0, 0, 32, 32)
	assert.False(t, Overlaps(a, NewRect(32, 0, 32, 32)), "right neighbour")
	assert.False(t, Overlaps(a, NewRect(0, 32, 32, 32)), "bottom neighbour")
	assert.False(t, Overlaps(a, NewRect(32, 32, 32, 32)), "corner neighbour")
	assert.True(t, Overlaps(a, NewRect(31.999, 0, 32, 32)))
}

func TestOverlaps_Containment(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	inner := NewRect(40, 40, 5, 5)
	assert.True(t, Overlaps(outer, inner))
	assert.True(t, inner.Inside(outer))
	assert.False(t, outer.Inside(inner))
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(10, 20, 6, 10)
	cx, cy := r.Center()
	assert.Equal(t, 13.0, cx)
	assert.Equal(t, 25.0, cy)
	assert.Equal(t, 16.0, r.Right())
	assert.Equal(t, 30.0, r.Bottom())
	assert.Equal(t, NewRect(15, 15, 6, 10), r.Translate(5, -5))
}
