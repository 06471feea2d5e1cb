package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"agario/internal/game"
)

// Click is a primary-button press in canvas coordinates.
type Click struct {
	X, Y float64
}

// Input collects glfw callbacks into a game.InputState. Callbacks run on the
// loop's own thread during glfw.PollEvents, so no locking is needed.
type Input struct {
	State  game.InputState
	clicks []Click
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{}
	window.SetKeyCallback(in.onKey)
	window.SetCursorPosCallback(in.onCursor)
	window.SetMouseButtonCallback(in.onMouseButton)
	return in
}

func (in *Input) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	down := action == glfw.Press
	switch key {
	case glfw.KeyUp, glfw.KeyW:
		in.State.Up = down
	case glfw.KeyDown, glfw.KeyS:
		in.State.Down = down
	case glfw.KeyLeft, glfw.KeyA:
		in.State.Left = down
	case glfw.KeyRight, glfw.KeyD:
		in.State.Right = down
	case glfw.KeyEscape:
		if down {
			w.SetShouldClose(true)
		}
	}
}

func (in *Input) onCursor(w *glfw.Window, x, y float64) {
	in.State.MouseX, in.State.MouseY = canvasPos(w, x, y)
}

func (in *Input) onMouseButton(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if btn != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	cx, cy := w.GetCursorPos()
	x, y := canvasPos(w, cx, cy)
	in.State.MouseX, in.State.MouseY = x, y
	in.clicks = append(in.clicks, Click{X: x, Y: y})
}

// DrainClicks returns the clicks queued since the last call.
func (in *Input) DrainClicks() []Click {
	out := in.clicks
	in.clicks = nil
	return out
}

// canvasPos converts window coordinates to arena canvas coordinates.
func canvasPos(window *glfw.Window, cx, cy float64) (float64, float64) {
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cx, cy
	}
	return cx * game.ArenaWidth / float64(winW), cy * game.ArenaHeight / float64(winH)
}
