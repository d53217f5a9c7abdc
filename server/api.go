package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/esimov/koch"
)

// generateRequest is the JSON body accepted by POST /api/koch/generate.
// GET requests carry the same fields as query parameters.
type generateRequest struct {
	Iterations  *int     `json:"iterations"`
	Scale       *float64 `json:"scale"`
	Color       string   `json:"color"`
	HalfType    string   `json:"half_type"`
	ReturnImage *bool    `json:"return_image"`
}

type metadata struct {
	Iterations       int     `json:"iterations"`
	Scale            float64 `json:"scale"`
	Color            string  `json:"color"`
	HalfType         string  `json:"half_type"`
	TotalPoints      int     `json:"total_points"`
	TotalSegments    int     `json:"total_segments"`
	EstimatedLength  float64 `json:"estimated_length"`
	GeneratedAt      string  `json:"generated_at"`
	FractalDimension float64 `json:"fractal_dimension"`
}

type generateResponse struct {
	Success     bool     `json:"success"`
	Metadata    metadata `json:"metadata"`
	ImageBase64 string   `json:"image_base64,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleGenerate builds a snowflake from request parameters and responds
// with its metrics, optionally including the rendered PNG as base64.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	params, returnImage, err := s.parseGenerateRequest(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := params.Validate(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	boundary := koch.ExtractHalf(koch.Generate(params.Depth, params.Scale), params.Half)
	m := koch.Measure(boundary, params.Depth, params.Scale)

	resp := generateResponse{
		Success: true,
		Metadata: metadata{
			Iterations:       params.Depth,
			Scale:            params.Scale,
			Color:            params.Color,
			HalfType:         string(params.Half),
			TotalPoints:      m.PointCount,
			TotalSegments:    m.SegmentCount,
			EstimatedLength:  m.EstimatedLength,
			GeneratedAt:      time.Now().Format(time.RFC3339),
			FractalDimension: m.FractalDimension,
		},
	}

	if returnImage {
		var buf bytes.Buffer
		if err := s.renderer.EncodePNG(&buf, boundary, params); err != nil {
			s.log.Error("server.render_failed", "error", err)
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render image"})
			return
		}
		resp.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleList reports every stored render with size and creation time.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	files, err := s.store.List()
	if err != nil {
		s.log.Error("server.list_failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list images"})
		return
	}

	type imageInfo struct {
		Filename string `json:"filename"`
		URL      string `json:"url"`
		Size     int64  `json:"size"`
		Created  string `json:"created"`
	}

	images := make([]imageInfo, 0, len(files))
	for _, f := range files {
		images = append(images, imageInfo{
			Filename: f.Name,
			URL:      "/static/images/" + f.Name,
			Size:     f.Size,
			Created:  f.Created.Format(time.RFC3339),
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"images": images,
		"total":  len(images),
	})
}

// handleClear deletes all stored renders, best effort.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	removed := s.store.Clear()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "all images have been removed",
		"removed": removed,
	})
}

func (s *Server) parseGenerateRequest(r *http.Request) (koch.Params, bool, error) {
	params := koch.DefaultParams()
	returnImage := true

	switch r.Method {
	case http.MethodPost:
		var req generateRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				return params, false, &koch.ParamError{Param: "body", Value: "", Reason: "malformed JSON body"}
			}
		}
		if req.Iterations != nil {
			params.Depth = *req.Iterations
		}
		if req.Scale != nil {
			params.Scale = *req.Scale
		}
		if req.Color != "" {
			params.Color = req.Color
		}
		if req.HalfType != "" {
			params.Half = koch.Half(req.HalfType)
		}
		if req.ReturnImage != nil {
			returnImage = *req.ReturnImage
		}

	default:
		q := r.URL.Query()
		if v := q.Get("iterations"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return params, false, &koch.ParamError{Param: "iterations", Value: v, Reason: "must be an integer"}
			}
			params.Depth = n
		}
		if v := q.Get("scale"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return params, false, &koch.ParamError{Param: "scale", Value: v, Reason: "must be a number"}
			}
			params.Scale = f
		}
		if v := q.Get("color"); v != "" {
			params.Color = v
		}
		if v := q.Get("half_type"); v != "" {
			params.Half = koch.Half(v)
		}
		if v := q.Get("return_image"); v != "" {
			returnImage = v == "true" || v == "1"
		}
	}

	return params, returnImage, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("server.write_json_failed", "error", err)
	}
}
