package repository

import (
	"testing"

	"monkey-boards/catalog"
	"monkey-boards/planner"
)

func newBoard() *planner.Board {
	return planner.NewBoard(catalog.DefaultBoardSize(), &planner.SequenceIDGenerator{})
}

func TestCreateAndView(t *testing.T) {
	r := NewSessionRepository()
	id := r.Create(newBoard())
	if id == "" {
		t.Fatalf("empty session id")
	}
	if r.Count() != 1 {
		t.Fatalf("count = %d", r.Count())
	}

	var zoom float64
	if !r.View(id, func(b *planner.Board) { zoom = b.Zoom() }) {
		t.Fatalf("session not found")
	}
	if zoom != 1 {
		t.Fatalf("zoom = %g", zoom)
	}
}

func TestUpdatePersists(t *testing.T) {
	r := NewSessionRepository()
	id := r.Create(newBoard())

	r.Update(id, func(b *planner.Board) { b.SetZoom(1.5) })

	var zoom float64
	r.View(id, func(b *planner.Board) { zoom = b.Zoom() })
	if zoom != 1.5 {
		t.Fatalf("update did not persist, zoom = %g", zoom)
	}
}

func TestMissingSession(t *testing.T) {
	r := NewSessionRepository()
	if r.Update("missing", func(*planner.Board) {}) {
		t.Fatalf("update of missing session reported true")
	}
	if r.Delete("missing") {
		t.Fatalf("delete of missing session reported true")
	}
}

func TestDelete(t *testing.T) {
	r := NewSessionRepository()
	id := r.Create(newBoard())

	if !r.Delete(id) {
		t.Fatalf("delete reported false")
	}
	if r.Count() != 0 {
		t.Fatalf("count = %d after delete", r.Count())
	}
	if r.View(id, func(*planner.Board) {}) {
		t.Fatalf("deleted session still visible")
	}
}

func TestDistinctIDs(t *testing.T) {
	r := NewSessionRepository()
	a := r.Create(newBoard())
	b := r.Create(newBoard())
	if a == b {
		t.Fatalf("duplicate session ids")
	}
}
