package repository

import "monkey-boards/planner"

// SessionRepositoryInterface defines the contract for planner session storage.
// Sessions live in memory only; layout state is never persisted and resets on
// restart.
type SessionRepositoryInterface interface {
	Create(board *planner.Board) string
	Update(id string, fn func(*planner.Board)) bool
	View(id string, fn func(*planner.Board)) bool
	Delete(id string) bool
	Count() int
}
