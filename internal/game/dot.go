package game

// Dot is a stationary food pellet. Dots are never mutated; an eaten dot is
// replaced by a fresh one at the same index.
type Dot struct {
	X, Y   float64
	Radius float64
	Color  RGB
}

// RandomDot spawns a dot somewhere inside the arena, keeping DotMargin clear
// of every edge.
func RandomDot(r *Rand, w, h float64) Dot {
	return Dot{
		X:      r.RangeF(DotMargin, w-DotMargin),
		Y:      r.RangeF(DotMargin, h-DotMargin),
		Radius: DotMinRadius + r.Float64()*DotRadiusVar,
		Color: RGB{
			R: uint8(DotColorMin + r.Intn(DotColorVar)),
			G: uint8(DotColorMin + r.Intn(DotColorVar)),
			B: uint8(DotColorMin + r.Intn(DotColorVar)),
		},
	}
}

// SpawnDots fills a fresh slice with n random dots.
func SpawnDots(r *Rand, n int, w, h float64) []Dot {
	dots := make([]Dot, n)
	for i := range dots {
		dots[i] = RandomDot(r, w, h)
	}
	return dots
}
