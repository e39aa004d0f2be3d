package planner

import "monkey-boards/models"

// DisplayScale converts catalog footprints (mm) into board canvas units.
const DisplayScale = 0.7

// Zoom bounds for the planner canvas.
const (
	MinZoom = 0.5
	MaxZoom = 2.0
)

// Board is the planner layout state for one session: the placed pedals in
// z-order, at most one selection, the active board size preset and the zoom
// level. Board is not safe for concurrent use; callers serialize access the
// way a UI event loop would.
type Board struct {
	pedals          []models.PlacedPedal
	selected        string
	size            models.BoardSize
	zoom            float64
	ids             IDGenerator
	reclampOnResize bool
}

// NewBoard returns an empty board at zoom 1 using the given size preset.
func NewBoard(size models.BoardSize, ids IDGenerator) *Board {
	return &Board{size: size, zoom: 1, ids: ids}
}

// SetReclampOnResize enables pulling placed pedals back inside the bounds when
// the board size changes. Off by default: the storefront never re-clamped on
// resize, and turning this on is a behavior change, not a fix.
func (b *Board) SetReclampOnResize(on bool) {
	b.reclampOnResize = on
}

// footprint returns the on-board size of a pedal after display scaling.
func footprint(p models.Pedal) (w, h float64) {
	return p.Width * DisplayScale, p.Height * DisplayScale
}

// clampCoord keeps v in [0, max]. A negative max (pedal larger than the
// board) degrades to 0 rather than rejecting the placement.
func clampCoord(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Place adds a pedal at the proposed board-local position, clamped into the
// board bounds, and selects it. The new pedal goes to the end of the sequence,
// which is the top of the z-order. Returns the fresh instance id.
func (b *Board) Place(p models.Pedal, x, y float64) string {
	w, h := footprint(p)
	placed := models.PlacedPedal{
		InstanceID: b.ids.NewInstanceID(p.ID),
		Pedal:      p,
		X:          clampCoord(x, b.size.Width-w),
		Y:          clampCoord(y, b.size.Height-h),
	}
	b.pedals = append(b.pedals, placed)
	b.selected = placed.InstanceID
	return placed.InstanceID
}

// PlaceAtDrop places a pedal from a pointer release in screen coordinates.
// The pedal lands centered on the drop point. Reports false, placing nothing,
// when the pointer is outside the canvas box.
func (b *Board) PlaceAtDrop(p models.Pedal, pointer Point, canvas CanvasRect) (string, bool) {
	pt, ok := ScreenToBoard(pointer, canvas, b.zoom)
	if !ok {
		return "", false
	}
	w, h := footprint(p)
	return b.Place(p, pt.X-w/2, pt.Y-h/2), true
}

// Move sets a pedal's position with the same clamp policy as Place. A missing
// instance id is a silent no-op: removal-during-drag is a normal race in a
// direct-manipulation UI.
func (b *Board) Move(instanceID string, x, y float64) {
	for i := range b.pedals {
		if b.pedals[i].InstanceID == instanceID {
			w, h := footprint(b.pedals[i].Pedal)
			b.pedals[i].X = clampCoord(x, b.size.Width-w)
			b.pedals[i].Y = clampCoord(y, b.size.Height-h)
			return
		}
	}
}

// DragBy continues an active drag: the screen-space delta is converted into
// board space at the current zoom and applied through Move.
func (b *Board) DragBy(instanceID string, dxScreen, dyScreen float64) {
	for i := range b.pedals {
		if b.pedals[i].InstanceID == instanceID {
			dx, dy := DeltaToBoard(dxScreen, dyScreen, b.zoom)
			b.Move(instanceID, b.pedals[i].X+dx, b.pedals[i].Y+dy)
			return
		}
	}
}

// Rotate sets a pedal's rotation to the given absolute target, normalized into
// [0, 360). Missing ids are a no-op.
func (b *Board) Rotate(instanceID string, degrees int) {
	for i := range b.pedals {
		if b.pedals[i].InstanceID == instanceID {
			b.pedals[i].Rotation = ((degrees % 360) + 360) % 360
			return
		}
	}
}

// RotateStep turns a pedal by the conventional +90 increment.
func (b *Board) RotateStep(instanceID string) {
	for i := range b.pedals {
		if b.pedals[i].InstanceID == instanceID {
			b.Rotate(instanceID, b.pedals[i].Rotation+90)
			return
		}
	}
}

// Remove deletes a pedal. If it was selected the selection becomes none.
// Missing ids are a no-op that leaves the state untouched.
func (b *Board) Remove(instanceID string) {
	for i := range b.pedals {
		if b.pedals[i].InstanceID == instanceID {
			b.pedals = append(b.pedals[:i], b.pedals[i+1:]...)
			if b.selected == instanceID {
				b.selected = ""
			}
			return
		}
	}
}

// Select sets the selection. An empty id clears it. Selecting an id that does
// not exist is ignored and keeps the current selection.
func (b *Board) Select(instanceID string) {
	if instanceID == "" {
		b.selected = ""
		return
	}
	for i := range b.pedals {
		if b.pedals[i].InstanceID == instanceID {
			b.selected = instanceID
			return
		}
	}
}

// DeleteSelected removes the selected pedal, if any.
func (b *Board) DeleteSelected() {
	if b.selected != "" {
		b.Remove(b.selected)
	}
}

// ClearBoard empties the board and clears the selection. There is no undo.
func (b *Board) ClearBoard() {
	b.pedals = nil
	b.selected = ""
}

// SetBoardSize swaps the active size preset. Existing pedals are not pulled
// back inside the new bounds unless reclamp-on-resize was enabled; they stay
// where they are until moved individually.
func (b *Board) SetBoardSize(size models.BoardSize) {
	b.size = size
	if !b.reclampOnResize {
		return
	}
	for i := range b.pedals {
		w, h := footprint(b.pedals[i].Pedal)
		b.pedals[i].X = clampCoord(b.pedals[i].X, size.Width-w)
		b.pedals[i].Y = clampCoord(b.pedals[i].Y, size.Height-h)
	}
}

// SetZoom clamps the zoom into [MinZoom, MaxZoom].
func (b *Board) SetZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	b.zoom = zoom
}

// Pedals returns a copy of the placed sequence in z-order.
func (b *Board) Pedals() []models.PlacedPedal {
	out := make([]models.PlacedPedal, len(b.pedals))
	copy(out, b.pedals)
	return out
}

// Pedal returns the placed pedal with the given instance id.
func (b *Board) Pedal(instanceID string) (models.PlacedPedal, bool) {
	for _, p := range b.pedals {
		if p.InstanceID == instanceID {
			return p, true
		}
	}
	return models.PlacedPedal{}, false
}

// Selected returns the selected instance id, or "" when nothing is selected.
func (b *Board) Selected() string { return b.selected }

// Size returns the active board size preset.
func (b *Board) Size() models.BoardSize { return b.size }

// Zoom returns the current zoom level.
func (b *Board) Zoom() float64 { return b.zoom }

// State snapshots the full layout for the session API.
func (b *Board) State() models.BoardState {
	return models.BoardState{
		Pedals:          b.Pedals(),
		SelectedPedalID: b.selected,
		BoardSize:       b.size,
		Zoom:            b.zoom,
	}
}
