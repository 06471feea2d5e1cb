package game

import "testing"

func TestRandomDotRanges(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 2000; i++ {
		d := RandomDot(r, ArenaWidth, ArenaHeight)
		if d.X < DotMargin || d.X >= ArenaWidth-DotMargin || d.Y < DotMargin || d.Y >= ArenaHeight-DotMargin {
			t.Fatalf("dot %d out of bounds: (%v, %v)", i, d.X, d.Y)
		}
		if d.Radius < DotMinRadius || d.Radius >= DotMinRadius+DotRadiusVar {
			t.Fatalf("dot %d radius %v out of range", i, d.Radius)
		}
		for _, c := range []uint8{d.Color.R, d.Color.G, d.Color.B} {
			if c < DotColorMin || int(c) >= DotColorMin+DotColorVar {
				t.Fatalf("dot %d colour %+v out of range", i, d.Color)
			}
		}
	}
}

func TestSpawnDotsDeterministic(t *testing.T) {
	a := SpawnDots(NewRand(5), DotCount, ArenaWidth, ArenaHeight)
	b := SpawnDots(NewRand(5), DotCount, ArenaWidth, ArenaHeight)
	if len(a) != DotCount {
		t.Fatalf("len = %d, want %d", len(a), DotCount)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("dot %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNewRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 && r.NextU64() == 0 {
		t.Fatalf("zero seed produced a stuck generator")
	}
}
