package game

import "math"

// Circle is the moving, growable shape shared by the player and the bot.
// The radius only ever grows and the whole circle is kept inside the arena.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  RGB
}

// Move steps the circle along (dx, dy) at the given speed. A zero-length
// direction leaves the position untouched apart from clamping.
func (c *Circle) Move(dx, dy, speed, w, h float64) {
	if l := math.Hypot(dx, dy); l > MoveEpsilon {
		c.X += dx / l * speed
		c.Y += dy / l * speed
	}
	c.Clamp(w, h)
}

// Clamp keeps the full circle within [r, w-r] x [r, h-r].
func (c *Circle) Clamp(w, h float64) {
	c.X = clampF(c.X, c.Radius, w-c.Radius)
	c.Y = clampF(c.Y, c.Radius, h-c.Radius)
}

func (c *Circle) Grow(amount float64) {
	if amount > 0 {
		c.Radius += amount
	}
}

// Eats reports whether the circle touches or overlaps the dot at all.
func (c *Circle) Eats(d Dot) bool {
	return dist(c.X, c.Y, d.X, d.Y) <= c.Radius+d.Radius
}
