package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"monkey-boards/catalog"
	"monkey-boards/metrics"
	"monkey-boards/models"
	"monkey-boards/planner"
	"monkey-boards/repository"
	"monkey-boards/service"
)

// PlannerController owns the planner sessions: each session is one board
// state value, mutated only through the documented layout operations. The
// repository serializes access so every board sees event-loop discipline.
type PlannerController struct {
	sessions  repository.SessionRepositoryInterface
	ids       planner.IDGenerator
	snapshots *service.SnapshotService
}

// NewPlannerController creates a new PlannerController.
func NewPlannerController(sessions repository.SessionRepositoryInterface, ids planner.IDGenerator, snapshots *service.SnapshotService) *PlannerController {
	return &PlannerController{sessions: sessions, ids: ids, snapshots: snapshots}
}

type createSessionRequest struct {
	BoardSizeID     string `json:"boardSizeId,omitempty"`
	ReclampOnResize bool   `json:"reclampOnResize,omitempty"`
}

type createSessionResponse struct {
	SessionID string            `json:"sessionId"`
	State     models.BoardState `json:"state"`
}

// CreateSession handles POST /api/planner/sessions
func (c *PlannerController) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size := catalog.DefaultBoardSize()
	var req createSessionRequest
	// Body is optional; an empty body starts a default session
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.BoardSizeID != "" {
		preset, ok := catalog.BoardSizeByID(req.BoardSizeID)
		if !ok {
			http.Error(w, "Unknown board size", http.StatusBadRequest)
			return
		}
		size = preset
	}

	board := planner.NewBoard(size, c.ids)
	board.SetReclampOnResize(req.ReclampOnResize)
	id := c.sessions.Create(board)
	metrics.PlannerSessions.Inc()

	log.Printf("✅ CreateSession: Created planner session %s (board %s)", id, size.ID)
	writeJSON(w, http.StatusCreated, createSessionResponse{SessionID: id, State: board.State()})
}

type placeRequest struct {
	PedalID string  `json:"pedalId"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type dropRequest struct {
	PedalID string             `json:"pedalId"`
	Pointer planner.Point      `json:"pointer"`
	Canvas  planner.CanvasRect `json:"canvas"`
}

type moveRequest struct {
	InstanceID string  `json:"instanceId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

type dragRequest struct {
	InstanceID string  `json:"instanceId"`
	DX         float64 `json:"dx"`
	DY         float64 `json:"dy"`
}

type rotateRequest struct {
	InstanceID string `json:"instanceId"`
	Degrees    *int   `json:"degrees,omitempty"` // absent = conventional +90 step
}

type selectRequest struct {
	InstanceID string `json:"instanceId"`
}

type boardSizeRequest struct {
	ID string `json:"id"`
}

type zoomRequest struct {
	Zoom float64 `json:"zoom"`
}

type placeResponse struct {
	InstanceID string            `json:"instanceId,omitempty"`
	Placed     bool              `json:"placed"`
	State      models.BoardState `json:"state"`
}

// Dispatch routes /api/planner/sessions/:id and its sub-paths.
func (c *PlannerController) Dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/planner/sessions/")
	if path == "" {
		http.Error(w, "session id parameter is required", http.StatusBadRequest)
		return
	}

	parts := strings.SplitN(path, "/", 3)
	sessionID := parts[0]

	// Session-level routes
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			c.getState(w, sessionID)
		case http.MethodDelete:
			c.deleteSession(w, sessionID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// DELETE /api/planner/sessions/:id/pedals/:instanceId
	if parts[1] == "pedals" && len(parts) == 3 && r.Method == http.MethodDelete {
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.Remove(parts[2]) })
		return
	}

	if len(parts) != 2 {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if parts[1] == "snapshot.png" {
		c.snapshot(w, r, sessionID)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch parts[1] {
	case "place":
		c.place(w, r, sessionID)
	case "drop":
		c.drop(w, r, sessionID)
	case "move":
		var req moveRequest
		if !decodeBody(w, r, &req) {
			return
		}
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.Move(req.InstanceID, req.X, req.Y) })
	case "drag":
		var req dragRequest
		if !decodeBody(w, r, &req) {
			return
		}
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.DragBy(req.InstanceID, req.DX, req.DY) })
	case "rotate":
		var req rotateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		c.mutate(w, r, sessionID, func(b *planner.Board) {
			if req.Degrees != nil {
				b.Rotate(req.InstanceID, *req.Degrees)
			} else {
				b.RotateStep(req.InstanceID)
			}
		})
	case "select":
		var req selectRequest
		if !decodeBody(w, r, &req) {
			return
		}
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.Select(req.InstanceID) })
	case "delete-selected":
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.DeleteSelected() })
	case "clear":
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.ClearBoard() })
	case "board-size":
		var req boardSizeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		preset, ok := catalog.BoardSizeByID(req.ID)
		if !ok {
			http.Error(w, "Unknown board size", http.StatusBadRequest)
			return
		}
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.SetBoardSize(preset) })
	case "zoom":
		var req zoomRequest
		if !decodeBody(w, r, &req) {
			return
		}
		c.mutate(w, r, sessionID, func(b *planner.Board) { b.SetZoom(req.Zoom) })
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (c *PlannerController) getState(w http.ResponseWriter, sessionID string) {
	var state models.BoardState
	if !c.sessions.View(sessionID, func(b *planner.Board) { state = b.State() }) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (c *PlannerController) deleteSession(w http.ResponseWriter, sessionID string) {
	if !c.sessions.Delete(sessionID) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// mutate applies a layout operation and returns the updated state.
func (c *PlannerController) mutate(w http.ResponseWriter, _ *http.Request, sessionID string, fn func(*planner.Board)) {
	var state models.BoardState
	ok := c.sessions.Update(sessionID, func(b *planner.Board) {
		fn(b)
		state = b.State()
	})
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (c *PlannerController) place(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req placeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pedal, ok := catalog.LookupByID(req.PedalID)
	if !ok {
		http.Error(w, "Unknown pedal", http.StatusNotFound)
		return
	}

	var resp placeResponse
	found := c.sessions.Update(sessionID, func(b *planner.Board) {
		resp.InstanceID = b.Place(pedal, req.X, req.Y)
		resp.Placed = true
		resp.State = b.State()
	})
	if !found {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (c *PlannerController) drop(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req dropRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pedal, ok := catalog.LookupByID(req.PedalID)
	if !ok {
		http.Error(w, "Unknown pedal", http.StatusNotFound)
		return
	}

	var resp placeResponse
	found := c.sessions.Update(sessionID, func(b *planner.Board) {
		resp.InstanceID, resp.Placed = b.PlaceAtDrop(pedal, req.Pointer, req.Canvas)
		resp.State = b.State()
	})
	if !found {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (c *PlannerController) snapshot(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var state models.BoardState
	if !c.sessions.View(sessionID, func(b *planner.Board) { state = b.State() }) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	img, err := c.snapshots.RenderBoard(state)
	if err != nil {
		log.Printf("❌ snapshot: Failed to render board: %v", err)
		http.Error(w, "Failed to render snapshot", http.StatusInternalServerError)
		return
	}
	if r.URL.Query().Get("size") == "thumb" {
		img = c.snapshots.Thumbnail(img)
	}

	data, err := c.snapshots.EncodePNG(img)
	if err != nil {
		log.Printf("❌ snapshot: Failed to encode snapshot: %v", err)
		http.Error(w, "Failed to render snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// decodeBody decodes a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("❌ Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
