package catalog

import "monkey-boards/models"

// BoardSizes is the fixed set of board canvas presets.
var BoardSizes = []models.BoardSize{
	{ID: "compact", Name: "Compact", Width: 500, Height: 250},
	{ID: "standard", Name: "Standard", Width: 550, Height: 350},
	{ID: "pro", Name: "Pro", Width: 600, Height: 400},
	{ID: "mega", Name: "Mega", Width: 800, Height: 450},
}

// DefaultBoardSize is the preset a fresh planner session starts with.
func DefaultBoardSize() models.BoardSize {
	return BoardSizes[1]
}

// BoardSizeByID returns the preset with the given id.
func BoardSizeByID(id string) (models.BoardSize, bool) {
	for _, s := range BoardSizes {
		if s.ID == id {
			return s, true
		}
	}
	return models.BoardSize{}, false
}
