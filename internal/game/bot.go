package game

import "math"

// Bot chases the nearest dot. It ignores the player entirely.
type Bot struct {
	Circle
}

func NewBot(x, y float64) *Bot {
	return &Bot{Circle{X: x, Y: y, Radius: StartRadius, Color: Palette.Bot}}
}

// BotSpeed is about 80% of the player's speed profile, decaying with size.
func BotSpeed(radius float64) float64 {
	return math.Max(BotMinSpeed, BotSpeedFactor*(BotBaseSpeed-(radius-StartRadius)/BotSpeedFalloff))
}

// NearestDot returns the index of the dot closest to (x, y). Ties go to the
// first dot encountered. ok is false when dots is empty.
func NearestDot(x, y float64, dots []Dot) (idx int, ok bool) {
	best := math.MaxFloat64
	idx = -1
	for i := range dots {
		if d2 := dist2(x, y, dots[i].X, dots[i].Y); d2 < best {
			best = d2
			idx = i
		}
	}
	return idx, idx >= 0
}

// Update steps the bot toward the nearest dot; with no dots it stays put.
func (b *Bot) Update(dots []Dot, w, h float64) {
	i, ok := NearestDot(b.X, b.Y, dots)
	if !ok {
		return
	}
	b.Move(dots[i].X-b.X, dots[i].Y-b.Y, BotSpeed(b.Radius), w, h)
}
