package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestMoveZeroDirectionLeavesPosition(t *testing.T) {
	c := Circle{X: 123, Y: 456, Radius: StartRadius}
	c.Move(0, 0, 4, ArenaWidth, ArenaHeight)
	if c.X != 123 || c.Y != 456 {
		t.Fatalf("position = (%v, %v), want (123, 456)", c.X, c.Y)
	}
}

func TestMoveNormalizesDiagonal(t *testing.T) {
	c := Circle{X: 300, Y: 300, Radius: StartRadius}
	c.Move(1, 1, 4, ArenaWidth, ArenaHeight)
	moved := math.Hypot(c.X-300, c.Y-300)
	if math.Abs(moved-4) > eps {
		t.Fatalf("diagonal step length = %v, want 4", moved)
	}
}

func TestClampKeepsCircleInsideArena(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		radius float64
		wantX  float64
		wantY  float64
	}{
		{"top-left", -50, -50, 20, 20, 20},
		{"bottom-right", 900, 900, 20, 580, 580},
		{"inside", 300, 200, 20, 300, 200},
		{"grown", 10, 590, 45.5, 45.5, 554.5},
	}
	for _, tc := range cases {
		c := Circle{X: tc.x, Y: tc.y, Radius: tc.radius}
		c.Clamp(ArenaWidth, ArenaHeight)
		if math.Abs(c.X-tc.wantX) > eps || math.Abs(c.Y-tc.wantY) > eps {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tc.name, c.X, c.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestPlayerStaysInBoundsUnderSustainedInput(t *testing.T) {
	p := NewPlayer(ArenaWidth/4, ArenaHeight/2)
	inputs := []InputState{
		{Up: true, Left: true},
		{Down: true, Right: true},
		{Up: true},
		{Right: true},
	}
	for _, in := range inputs {
		for i := 0; i < 500; i++ {
			p.Update(in, ArenaWidth, ArenaHeight)
			if p.X < p.Radius || p.X > ArenaWidth-p.Radius || p.Y < p.Radius || p.Y > ArenaHeight-p.Radius {
				t.Fatalf("player left the arena: (%v, %v) r=%v", p.X, p.Y, p.Radius)
			}
		}
		p.Grow(5)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	p := NewPlayer(300, 300)
	p.Update(InputState{Up: true, Down: true, Left: true, Right: true}, ArenaWidth, ArenaHeight)
	if p.X != 300 || p.Y != 300 {
		t.Fatalf("position = (%v, %v), want (300, 300)", p.X, p.Y)
	}
}

func TestPlayerSpeed(t *testing.T) {
	cases := []struct {
		radius float64
		want   float64
	}{
		{20, 4.0},
		{40, 3.0},
		{80, 1.0},
		{200, 1.0},
	}
	for _, tc := range cases {
		if got := PlayerSpeed(tc.radius); math.Abs(got-tc.want) > eps {
			t.Errorf("PlayerSpeed(%v) = %v, want %v", tc.radius, got, tc.want)
		}
	}
}

func TestGrowOnlyIncreases(t *testing.T) {
	c := Circle{Radius: StartRadius}
	c.Grow(GrowPerEat)
	c.Grow(-5)
	if c.Radius != StartRadius+GrowPerEat {
		t.Fatalf("radius = %v, want %v", c.Radius, StartRadius+GrowPerEat)
	}
}

func TestEatsOnTouch(t *testing.T) {
	c := Circle{X: 100, Y: 100, Radius: 20}
	touching := Dot{X: 125, Y: 100, Radius: 5}
	apart := Dot{X: 125.5, Y: 100, Radius: 5}
	if !c.Eats(touching) {
		t.Fatalf("expected touching dot to be eaten")
	}
	if c.Eats(apart) {
		t.Fatalf("expected separated dot to survive")
	}
}
