package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// CursorWarper moves the hardware cursor to a window pixel.
type CursorWarper interface {
	WarpCursor(x, y float64)
}

// EnableCursorWrap lets rotate and scale drags continue past the window
// edge: the cursor is teleported to the opposite edge and the jump is
// compensated so the drag amount stays continuous. It needs a CursorWarper.
func (g *Gizmo) EnableCursorWrap(enabled bool) {
	g.wrapEnabled = enabled
	if enabled && g.warper == nil {
		g.log.Warnf("gizmo: cursor wrap enabled without a cursor warper; drags will stop at the window edge")
	}
}

func (g *Gizmo) SetCursorWarper(w CursorWarper) {
	g.warper = w
}

// cursorNDC is the cursor in [-1,1] device coordinates plus the offset
// accumulated by earlier wraps. It fails for an empty viewport, which a
// minimised window reports.
func (g *Gizmo) cursorNDC(in Input) (mgl32.Vec2, bool) {
	if in.Width <= 0 || in.Height <= 0 {
		return mgl32.Vec2{}, false
	}
	return geom.CursorToNDC(in.CursorX, in.CursorY, in.Width, in.Height).Add(g.wrapOffset), true
}

// wrapCursor teleports a cursor sitting on a window edge to one pixel inside
// the opposite edge. The full window is two device units wide, hence ±2.
func (g *Gizmo) wrapCursor(in Input) {
	if !g.wrapEnabled || g.warper == nil || !g.isTransforming {
		return
	}
	if g.mode != ModeRotate && g.mode != ModeScale {
		return
	}
	w, h := in.Width, in.Height
	if w <= 2 || h <= 2 {
		return
	}

	x, y := in.CursorX, in.CursorY
	moved := false
	switch {
	case x <= 0:
		x = float32(w - 2)
		g.wrapOffset[0] -= 2
		moved = true
	case x >= float32(w-1):
		x = 1
		g.wrapOffset[0] += 2
		moved = true
	}
	switch {
	case y <= 0:
		y = float32(h - 2)
		g.wrapOffset[1] += 2
		moved = true
	case y >= float32(h-1):
		y = 1
		g.wrapOffset[1] -= 2
		moved = true
	}

	if moved {
		g.warper.WarpCursor(float64(x), float64(y))
	}
}
