package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	c := DarkenColor(color.RGBA{200, 100, 50, 255}, 0.5)
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, c)
}

func TestLightenColor_Saturates(t *testing.T) {
	c := LightenColor(color.RGBA{250, 100, 0, 128}, 40)
	assert.Equal(t, color.RGBA{255, 140, 40, 128}, c)
}

func TestFade(t *testing.T) {
	from := color.RGBA{200, 0, 100, 255}
	to := color.RGBA{0, 200, 100, 255}
	assert.Equal(t, from, Fade(from, to, 0))
	assert.Equal(t, to, Fade(from, to, 1))
	assert.Equal(t, to, Fade(from, to, 3))
	assert.Equal(t, color.RGBA{100, 100, 100, 255}, Fade(from, to, 0.5))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 0, 127}, WithAlpha(color.RGBA{100, 50, 0, 255}, 0.5))
	assert.Equal(t, color.RGBA{}, WithAlpha(color.RGBA{100, 50, 0, 255}, -1))
}
