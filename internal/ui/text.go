// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — растровый шрифт, не требующий файлов
var DefaultFace font.Face = basicfont.Face7x13

// MeasureText возвращает ширину и высоту строки в пикселях без масштаба
func MeasureText(face font.Face, s string) (int, int) {
	b := text.BoundString(face, s)
	return b.Dx(), b.Dy()
}

// DrawOutlinedText рисует строку с обводкой. y — базовая линия.
func DrawOutlinedText(screen *ebiten.Image, s string, face font.Face, x, y int, fg, outline color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, fg)
}

// DrawScaledText рисует строку, увеличенную в scale раз, с центром в (cx, cy).
// Растровый шрифт масштабируется без сглаживания.
func DrawScaledText(screen *ebiten.Image, s string, face font.Face, cx, cy float64, scale float64, clr color.Color) {
	b := text.BoundString(face, s)
	if b.Empty() {
		return
	}
	img := ebiten.NewImage(b.Dx(), b.Dy())
	defer img.Deallocate()
	text.Draw(img, s, face, -b.Min.X, -b.Min.Y, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(b.Dx())*scale/2, cy-float64(b.Dy())*scale/2)
	screen.DrawImage(img, op)
}
