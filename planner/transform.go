package planner

// Point is a position in either screen or board-local coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CanvasRect is the canvas element's on-screen bounding box. Width and Height
// are the displayed size, already affected by zoom.
type CanvasRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ScreenToBoard maps a pointer position in screen coordinates into board-local
// space. Reports false when the pointer falls outside the canvas box, in which
// case the drop must be treated as a no-op. Clamping to board bounds is not
// done here; it is always the last step, applied by the board operations.
func ScreenToBoard(pointer Point, canvas CanvasRect, zoom float64) (Point, bool) {
	relX := pointer.X - canvas.Left
	relY := pointer.Y - canvas.Top
	if relX < 0 || relX > canvas.Width || relY < 0 || relY > canvas.Height {
		return Point{}, false
	}
	return Point{X: relX / zoom, Y: relY / zoom}, true
}

// DeltaToBoard converts an incremental pointer movement in screen space into a
// board-local delta. A zero delta always maps to a zero delta.
func DeltaToBoard(dx, dy, zoom float64) (float64, float64) {
	return dx / zoom, dy / zoom
}
