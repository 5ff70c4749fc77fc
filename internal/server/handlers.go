package server

import (
	"encoding/json"
	"net/http"

	"github.com/slidesmith/slidesmith/pkg/autofit"
	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/render/dot"
)

// parseRequest is the body for POST /v1/parse.
type parseRequest struct {
	Source  string `json:"source"`
	Dialect string `json:"dialect,omitempty"`
}

// parseResponse carries the parsed diagram and the dialect used.
type parseResponse struct {
	Dialect string           `json:"dialect"`
	Diagram *diagram.Diagram `json:"diagram"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	dialect := diagram.Dialect(req.Dialect)
	if dialect == "" {
		dialect = diagram.DetectDialect(req.Source)
	}

	d, err := diagram.ParseAs(r.Context(), req.Source, dialect)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{
		Dialect: string(dialect),
		Diagram: d,
	})
}

// renderRequest is the body for POST /v1/render.
type renderRequest struct {
	Source  string `json:"source"`
	Dialect string `json:"dialect,omitempty"`
	Format  string `json:"format,omitempty"`
}

var renderContentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"dot": "text/vnd.graphviz",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	format := req.Format
	if format == "" {
		format = "svg"
	}
	contentType, ok := renderContentTypes[format]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg, png, or dot)", format))
		return
	}

	dialect := diagram.Dialect(req.Dialect)
	if dialect == "" {
		dialect = diagram.DetectDialect(req.Source)
	}

	d, err := diagram.ParseAs(r.Context(), req.Source, dialect)
	if err != nil {
		writeError(w, err)
		return
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot.ToDOT(d))
	case "svg":
		data, err = dot.RenderSVG(r.Context(), d)
	case "png":
		data, err = dot.RenderPNG(r.Context(), d)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// fitRequest is the body for POST /v1/fit.
type fitRequest struct {
	Text     string  `json:"text"`
	Strategy string  `json:"strategy,omitempty"`
	FontSize int     `json:"font_size,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req fitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	strategy, err := autofit.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, err)
		return
	}

	width, height := req.Width, req.Height
	if width <= 0 {
		width = 9.0
	}
	if height <= 0 {
		height = 5.5
	}

	engine := autofit.NewDefault()
	res, err := engine.Fit(r.Context(), req.Text, autofit.DefaultContainer(width, height), strategy, req.FontSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// errorResponse is the structured error payload for all endpoints.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeParseEmpty, errors.ErrCodeParseInvalid,
		errors.ErrCodeInvalidInput, errors.ErrCodeInvalidStrategy,
		errors.ErrCodeInvalidFormat, errors.ErrCodeLayoutEmpty,
		errors.ErrCodeLayoutBounds, errors.ErrCodeLayoutTarget:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{
		Error: errorBody{
			Code:    string(code),
			Message: errors.UserMessage(err),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
