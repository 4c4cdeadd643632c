package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/renderer"
	"github.com/norman784/amethyst/timing"
)

// Game is implemented by the user of the engine and driven by Run.
type Game interface {
	Init()
	Update()
	Render()
	FrameEnd()
	DeInit()
}

var shouldRun = true

// Quit makes the engine loop exit after the current frame
func Quit() {
	shouldRun = false
}

func Run(game Game, win *Window, rend renderer.Render) {

	game.Init()

	for shouldRun {

		timing.FrameStarted()

		win.handleInputs()
		game.Update()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
		game.Render()

		rend.FrameEnd()
		game.FrameEnd()
		win.SDLWin.GLSwap()

		timing.FrameEnded()
	}

	game.DeInit()
}
