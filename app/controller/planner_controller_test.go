package controller

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monkey-boards/models"
	"monkey-boards/planner"
	"monkey-boards/repository"
	"monkey-boards/service"
)

func newTestPlanner(t *testing.T) *PlannerController {
	t.Helper()
	snapshots, err := service.NewSnapshotService()
	if err != nil {
		t.Fatalf("snapshot service: %v", err)
	}
	return NewPlannerController(repository.NewSessionRepository(), &planner.SequenceIDGenerator{}, snapshots)
}

func createSession(t *testing.T, c *PlannerController, body string) createSessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/planner/sessions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.CreateSession(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, body %s", rec.Code, rec.Body)
	}
	var resp createSessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp
}

func dispatch(t *testing.T, c *PlannerController, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	c.Dispatch(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) models.BoardState {
	t.Helper()
	var state models.BoardState
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return state
}

func TestCreateSessionDefaults(t *testing.T) {
	c := newTestPlanner(t)
	resp := createSession(t, c, "")

	if resp.SessionID == "" {
		t.Fatalf("empty session id")
	}
	if resp.State.BoardSize.ID != "standard" || resp.State.Zoom != 1 {
		t.Fatalf("unexpected initial state %+v", resp.State)
	}
}

func TestCreateSessionWithPreset(t *testing.T) {
	c := newTestPlanner(t)
	resp := createSession(t, c, `{"boardSizeId":"compact"}`)
	if resp.State.BoardSize.Width != 500 || resp.State.BoardSize.Height != 250 {
		t.Fatalf("compact preset not applied: %+v", resp.State.BoardSize)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/planner/sessions", strings.NewReader(`{"boardSizeId":"gigantic"}`))
	rec := httptest.NewRecorder()
	c.CreateSession(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown preset accepted: %d", rec.Code)
	}
}

func TestPlaceAndGetState(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")
	base := "/api/planner/sessions/" + sess.SessionID

	rec := dispatch(t, c, http.MethodPost, base+"/place", placeRequest{PedalID: "boss-ds1", X: 40, Y: 60})
	if rec.Code != http.StatusOK {
		t.Fatalf("place status = %d, body %s", rec.Code, rec.Body)
	}
	var resp placeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Placed || resp.InstanceID != "boss-ds1-1" {
		t.Fatalf("unexpected place response %+v", resp)
	}
	if len(resp.State.Pedals) != 1 || resp.State.SelectedPedalID != "boss-ds1-1" {
		t.Fatalf("placement not reflected in state %+v", resp.State)
	}

	rec = dispatch(t, c, http.MethodGet, base, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get state status = %d", rec.Code)
	}
	state := decodeState(t, rec)
	if len(state.Pedals) != 1 || state.Pedals[0].X != 40 || state.Pedals[0].Y != 60 {
		t.Fatalf("stored state %+v", state)
	}
}

func TestPlaceUnknownPedal(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")

	rec := dispatch(t, c, http.MethodPost, "/api/planner/sessions/"+sess.SessionID+"/place",
		placeRequest{PedalID: "no-such-pedal"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLayoutOperations(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")
	base := "/api/planner/sessions/" + sess.SessionID

	dispatch(t, c, http.MethodPost, base+"/place", placeRequest{PedalID: "boss-ds1", X: 40, Y: 60})

	rec := dispatch(t, c, http.MethodPost, base+"/move", moveRequest{InstanceID: "boss-ds1-1", X: 100, Y: 80})
	if state := decodeState(t, rec); state.Pedals[0].X != 100 || state.Pedals[0].Y != 80 {
		t.Fatalf("move not applied: %+v", state.Pedals[0])
	}

	// Rotate without degrees steps by 90.
	rec = dispatch(t, c, http.MethodPost, base+"/rotate", rotateRequest{InstanceID: "boss-ds1-1"})
	if state := decodeState(t, rec); state.Pedals[0].Rotation != 90 {
		t.Fatalf("rotate step: rotation = %d", state.Pedals[0].Rotation)
	}
	deg := 180
	rec = dispatch(t, c, http.MethodPost, base+"/rotate", rotateRequest{InstanceID: "boss-ds1-1", Degrees: &deg})
	if state := decodeState(t, rec); state.Pedals[0].Rotation != 180 {
		t.Fatalf("absolute rotate: rotation = %d", state.Pedals[0].Rotation)
	}

	rec = dispatch(t, c, http.MethodPost, base+"/zoom", zoomRequest{Zoom: 5})
	if state := decodeState(t, rec); state.Zoom != planner.MaxZoom {
		t.Fatalf("zoom not clamped: %g", state.Zoom)
	}

	rec = dispatch(t, c, http.MethodPost, base+"/board-size", boardSizeRequest{ID: "mega"})
	if state := decodeState(t, rec); state.BoardSize.ID != "mega" {
		t.Fatalf("board size not applied: %+v", state.BoardSize)
	}
	rec = dispatch(t, c, http.MethodPost, base+"/board-size", boardSizeRequest{ID: "bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown board size accepted: %d", rec.Code)
	}

	rec = dispatch(t, c, http.MethodPost, base+"/select", selectRequest{InstanceID: ""})
	if state := decodeState(t, rec); state.SelectedPedalID != "" {
		t.Fatalf("selection not cleared: %q", state.SelectedPedalID)
	}

	rec = dispatch(t, c, http.MethodDelete, base+"/pedals/boss-ds1-1", nil)
	if state := decodeState(t, rec); len(state.Pedals) != 0 {
		t.Fatalf("pedal not removed: %+v", state.Pedals)
	}
}

func TestDeleteSelectedAndClear(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")
	base := "/api/planner/sessions/" + sess.SessionID

	dispatch(t, c, http.MethodPost, base+"/place", placeRequest{PedalID: "boss-ds1"})
	dispatch(t, c, http.MethodPost, base+"/place", placeRequest{PedalID: "boss-dd3"})

	rec := dispatch(t, c, http.MethodPost, base+"/delete-selected", nil)
	state := decodeState(t, rec)
	if len(state.Pedals) != 1 || state.Pedals[0].InstanceID != "boss-ds1-1" {
		t.Fatalf("delete-selected removed the wrong pedal: %+v", state.Pedals)
	}

	rec = dispatch(t, c, http.MethodPost, base+"/clear", nil)
	if state := decodeState(t, rec); len(state.Pedals) != 0 {
		t.Fatalf("clear left %d pedals", len(state.Pedals))
	}
}

func TestSessionLifecycle(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")
	base := "/api/planner/sessions/" + sess.SessionID

	rec := dispatch(t, c, http.MethodDelete, base, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = dispatch(t, c, http.MethodGet, base, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted session still resolves: %d", rec.Code)
	}
	rec = dispatch(t, c, http.MethodPost, base+"/clear", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("mutation on deleted session: %d", rec.Code)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")
	base := "/api/planner/sessions/" + sess.SessionID

	dispatch(t, c, http.MethodPost, base+"/place", placeRequest{PedalID: "boss-ds1", X: 40, Y: 60})

	rec := dispatch(t, c, http.MethodGet, base+"/snapshot.png", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("snapshot status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("content type = %q", got)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("snapshot is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 550 || img.Bounds().Dy() != 350 {
		t.Fatalf("snapshot is %v, want 550x350", img.Bounds())
	}

	rec = dispatch(t, c, http.MethodGet, base+"/snapshot.png?size=thumb", nil)
	thumb, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("thumbnail is not a PNG: %v", err)
	}
	if thumb.Bounds().Dx() > 300 || thumb.Bounds().Dy() > 300 {
		t.Fatalf("thumbnail too large: %v", thumb.Bounds())
	}
}

func TestDispatchUnknownRoutes(t *testing.T) {
	c := newTestPlanner(t)
	sess := createSession(t, c, "")
	base := "/api/planner/sessions/" + sess.SessionID

	rec := dispatch(t, c, http.MethodPost, base+"/teleport", map[string]string{})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown op status = %d", rec.Code)
	}
	rec = dispatch(t, c, http.MethodGet, "/api/planner/sessions/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing session status = %d", rec.Code)
	}
	rec = dispatch(t, c, http.MethodGet, "/api/planner/sessions/", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty session id status = %d", rec.Code)
	}
}
