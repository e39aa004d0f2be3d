package models

// BoardSize is one of the fixed board canvas presets. Width and Height share
// the unit space of pedal footprints.
type BoardSize struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlacedPedal is a concrete occurrence of a catalog pedal on the board.
// X and Y are the top-left position in board-local, un-zoomed coordinates.
// Rotation is constrained to {0, 90, 180, 270}.
type PlacedPedal struct {
	InstanceID string  `json:"instanceId"`
	Pedal      Pedal   `json:"pedal"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Rotation   int     `json:"rotation"`
}

// BoardState is the full planner layout state as returned by the session API.
// Slice order is z-order (insertion order).
type BoardState struct {
	Pedals          []PlacedPedal `json:"pedals"`
	SelectedPedalID string        `json:"selectedPedalId,omitempty"`
	BoardSize       BoardSize     `json:"boardSize"`
	Zoom            float64       `json:"zoom"`
}
