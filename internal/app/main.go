package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"agario/internal/config"
	"agario/internal/game"
)

// RunDesktop opens the window and runs the game until it is closed.
func RunDesktop(opts config.Options) {
	runtime.LockOSThread()

	window, err := initWindow(opts.VSync)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	session := game.NewGameSession(opts.Seed)
	if opts.Debug {
		fmt.Fprintf(os.Stderr, "agario: seed=%d vsync=%t\n", opts.Seed, opts.VSync)
		session.Events.SubscribeAll(logEvent)
	}
	input := NewInput(window)

	loop := game.NewLoop(game.SystemClock{},
		func() { session.Update(input.State) },
		func() {
			fbW, fbH := window.GetFramebufferSize()
			if fbW <= 0 || fbH <= 0 {
				return
			}
			rend.BeginFrame(fbW, fbH)
			RenderScreen(rend, session, input.State)
			window.SwapBuffers()
		},
	)

	for !window.ShouldClose() {
		glfw.PollEvents()
		for _, c := range input.DrainClicks() {
			session.Click(c.X, c.Y)
		}
		loop.Frame()
	}
}

func logEvent(e game.Event) {
	switch e.Type {
	case game.EventDotEaten:
		fmt.Fprintf(os.Stderr, "%s: %s at (%.0f, %.0f) score=%d\n", e.Type, e.Eater, e.X, e.Y, e.Score)
	case game.EventStateChanged, game.EventRoundOver:
		fmt.Fprintf(os.Stderr, "%s: %s\n", e.Type, e.State)
	default:
		fmt.Fprintf(os.Stderr, "%s\n", e.Type)
	}
}
