package game

import "math"

// Outcome is the result of a player/bot collision check.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// HalfOverlap reports whether the smaller circle is at least half submerged
// in the bigger one. Merely touching does not count.
func HalfOverlap(a, b Circle) bool {
	bigger := math.Max(a.Radius, b.Radius)
	smaller := math.Min(a.Radius, b.Radius)
	return dist(a.X, a.Y, b.X, b.Y) <= bigger-smaller/2
}

// Resolve decides the round when the player and bot collide. Equal radii
// never end the round, whatever the distance.
func Resolve(player, bot Circle) Outcome {
	if !HalfOverlap(player, bot) {
		return OutcomeNone
	}
	switch {
	case player.Radius > bot.Radius:
		return OutcomeWin
	case bot.Radius > player.Radius:
		return OutcomeLose
	}
	return OutcomeNone
}
