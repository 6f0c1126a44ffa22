// Package glfwcursor connects a GLFW window's cursor to the gizmo: it reads
// cursor samples and teleports the cursor for wrapped drags.
package glfwcursor

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/geom"
)

// Warper implements gizmo.CursorWarper for a GLFW window. Like every GLFW
// call it must be used from the main thread.
type Warper struct {
	window *glfw.Window
}

var _ gizmo.CursorWarper = (*Warper)(nil)

func New(window *glfw.Window) *Warper {
	return &Warper{window: window}
}

func (w *Warper) WarpCursor(x, y float64) {
	w.window.SetCursorPos(x, y)
}

// Input samples the cursor and builds the pick ray for it.
func (w *Warper) Input(cam gizmo.Camera) gizmo.Input {
	mx, my := w.window.GetCursorPos()
	width, height := w.window.GetSize()
	x, y := float32(mx), float32(my)
	return gizmo.Input{
		Ray:     geom.ScreenRay(x, y, width, height, cam.ViewMatrix(), cam.ProjectionMatrix()),
		CursorX: x,
		CursorY: y,
		Width:   width,
		Height:  height,
	}
}

// Frame is Input plus the left button state, ready for ProcessInput.
func (w *Warper) Frame(cam gizmo.Camera) gizmo.Frame {
	return gizmo.Frame{
		Input:      w.Input(cam),
		Camera:     cam,
		ButtonDown: w.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
	}
}
