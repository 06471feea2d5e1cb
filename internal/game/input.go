package game

// InputState is the latest keyboard and pointer snapshot. The host writes it
// from input callbacks and the loop reads it at the start of each tick.
type InputState struct {
	Up, Down, Left, Right bool
	MouseX, MouseY        float64
}

// Dir returns the raw direction from the held keys. Opposing keys cancel.
func (in InputState) Dir() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}
