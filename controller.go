package gizmo

// Frame is the per-frame input of ProcessInput.
type Frame struct {
	Input
	Camera     Camera
	ButtonDown bool
}

// ProcessInput runs one frame of the usual host loop: camera update, hover
// while idle, start on a press over a handle, a sample per held frame and
// end on release. It returns TransformFromInput's result on drag frames and
// false otherwise.
func (g *Gizmo) ProcessInput(f Frame) bool {
	if f.Camera == nil {
		return false
	}
	g.UpdateForCamera(f.Camera)

	pressed := f.ButtonDown && !g.buttonDown
	g.buttonDown = f.ButtonDown

	if !g.isTransforming {
		hovered := g.CheckSelectedAxes(f.Ray)
		if pressed && hovered {
			g.StartTransform()
		}
		return false
	}

	if !f.ButtonDown {
		g.EndTransform()
		return false
	}
	return g.TransformFromInput(f.Input, f.Camera)
}
