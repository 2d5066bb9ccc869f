// internal/collision/aabb.go
package collision

// Rect — ось-ориентированный прямоугольник (AABB), X/Y — левый верхний угол
type Rect struct {
	X, Y, W, H float64
}

// NewRect создаёт прямоугольник
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right возвращает правую границу (не включительно)
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom возвращает нижнюю границу (не включительно)
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center возвращает центр прямоугольника
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate возвращает прямоугольник, сдвинутый на (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inside проверяет, что r целиком лежит внутри bounds
func (r Rect) Inside(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y && r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// Overlaps проверяет пересечение двух прямоугольников.
// Интервалы полуоткрытые: прямоугольники, касающиеся гранью, не пересекаются.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}
