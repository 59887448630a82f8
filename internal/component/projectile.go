// internal/component/projectile.go
package component

// Projectile — снаряд, летящий справа налево.
type Projectile struct {
	Position
	Width  float64
	Height float64
}

func (p Projectile) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
