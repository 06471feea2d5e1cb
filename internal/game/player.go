package game

import "math"

// Player is the keyboard-driven circle.
type Player struct {
	Circle
}

func NewPlayer(x, y float64) *Player {
	return &Player{Circle{X: x, Y: y, Radius: StartRadius, Color: Palette.Player}}
}

// PlayerSpeed slows the player down slightly as it grows.
func PlayerSpeed(radius float64) float64 {
	return math.Max(PlayerMinSpeed, PlayerBaseSpeed-(radius-StartRadius)/PlayerSpeedFalloff)
}

// Update moves the player one tick according to the held direction keys.
func (p *Player) Update(in InputState, w, h float64) {
	dx, dy := in.Dir()
	p.Move(dx, dy, PlayerSpeed(p.Radius), w, h)
}
