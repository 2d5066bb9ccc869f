// pkg/render/color.go
package render

import "image/color"

// ArenaColors — цвета статичной части арены
type ArenaColors struct {
	Background color.RGBA
	Brick      color.RGBA
	Mortar     color.RGBA
	Steel      color.RGBA
	SteelEdge  color.RGBA
}

// DarkenColor уменьшает яркость цвета, factor в [0, 1]
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// LightenColor осветляет цвет на delta с насыщением на 255
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: c.A,
	}
}

// Fade смешивает from и to, t = 0 даёт from, t = 1 даёт to
func Fade(from, to color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

// WithAlpha возвращает цвет с заданной прозрачностью (premultiplied)
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
