package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := New(nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleParse(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/parse", parseRequest{
		Source: "graph LR\nA[Start] --> B[End]",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp parseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Dialect != "mermaid" {
		t.Errorf("dialect = %q, want mermaid", resp.Dialect)
	}
	if len(resp.Diagram.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(resp.Diagram.Nodes))
	}
	if len(resp.Diagram.Edges) != 1 {
		t.Errorf("edges = %d, want 1", len(resp.Diagram.Edges))
	}
}

func TestHandleParseActivity(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/parse", parseRequest{
		Source: "@startuml\nstart\n:Do work;\nstop\n@enduml",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp parseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Dialect != "plantuml" {
		t.Errorf("dialect = %q, want plantuml", resp.Dialect)
	}
	if len(resp.Diagram.Nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(resp.Diagram.Nodes))
	}
}

func TestHandleParseEmpty(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/parse", parseRequest{Source: "   ", Dialect: "mermaid"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != "PARSE_EMPTY" {
		t.Errorf("error code = %q, want PARSE_EMPTY", resp.Error.Code)
	}
}

func TestHandleParseBadBody(t *testing.T) {
	srv := New(nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", resp.Error.Code)
	}
}

func TestHandleRenderDOT(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/render", renderRequest{
		Source: "graph TD\nA[One] --> B[Two]",
		Format: "dot",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("content type = %q, want text/vnd.graphviz", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "digraph") {
		t.Errorf("body does not look like DOT output: %s", body)
	}
	if !strings.Contains(body, `"A" -> "B"`) {
		t.Errorf("body missing edge: %s", body)
	}
}

func TestHandleRenderBadFormat(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/render", renderRequest{
		Source: "graph TD\nA --> B",
		Format: "pdf",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != "INVALID_FORMAT" {
		t.Errorf("error code = %q, want INVALID_FORMAT", resp.Error.Code)
	}
}

func TestHandleFit(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/fit", fitRequest{
		Text: "A short line of content",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Strategy     string   `json:"strategy"`
		FontSize     int      `json:"font_size"`
		TextSegments []string `json:"text_segments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Strategy != "shrink_font" {
		t.Errorf("strategy = %q, want shrink_font", resp.Strategy)
	}
	if resp.FontSize <= 0 {
		t.Errorf("font size = %d, want positive", resp.FontSize)
	}
	if len(resp.TextSegments) != 1 {
		t.Errorf("segments = %d, want 1", len(resp.TextSegments))
	}
}

func TestHandleFitBadStrategy(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv.Handler(), "/v1/fit", fitRequest{
		Text:     "content",
		Strategy: "origami",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != "INVALID_STRATEGY" {
		t.Errorf("error code = %q, want INVALID_STRATEGY", resp.Error.Code)
	}
}
