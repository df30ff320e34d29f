package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/inkmath/inkmath/classify"
	"github.com/inkmath/inkmath/config"
	"github.com/inkmath/inkmath/ink"
	"github.com/inkmath/inkmath/log"
	"github.com/inkmath/inkmath/pipeline"
	"github.com/inkmath/inkmath/recognize"
	"github.com/inkmath/inkmath/render"
	"github.com/inkmath/inkmath/version"
)

// ApiServer exposes one drawing session over HTTP. The session is
// single-writer, so every handler serializes through mu.
type ApiServer struct {
	mu      sync.Mutex
	session *pipeline.Session
	pipe    *pipeline.Pipeline
	cfg     config.Config

	// Last recognition, used as the render caption.
	last *pipeline.Output
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewApiServer(cfg config.Config, classifier classify.Classifier) *ApiServer {
	return &ApiServer{
		session: pipeline.NewSession(),
		pipe:    pipeline.New(recognize.New(classifier)),
		cfg:     cfg,
	}
}

func (s *ApiServer) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func (s *ApiServer) writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{Data: data})
}

// POST /api/strokes adds one stroke, GET lists the canvas,
// DELETE /api/strokes?last=<bool> undoes the last stroke or clears all
func (s *ApiServer) handleStrokes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodPost:
		var req struct {
			Points []ink.Point `json:"points"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		if len(req.Points) == 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("points are required"))
			return
		}

		s.session.AddStroke(req.Points)
		s.writeSuccess(w, map[string]interface{}{
			"message": "Stroke added",
			"strokes": s.session.StrokeCount(),
		})

	case http.MethodGet:
		s.writeSuccess(w, s.session.Strokes())

	case http.MethodDelete:
		if r.URL.Query().Get("last") == "true" {
			if !s.session.UndoLastStroke() {
				s.writeError(w, http.StatusConflict, fmt.Errorf("nothing to undo"))
				return
			}
		} else {
			s.session.Clear()
		}
		s.last = nil
		s.writeSuccess(w, map[string]interface{}{
			"strokes": s.session.StrokeCount(),
		})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /api/recognize
func (s *ApiServer) handleRecognize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.pipe.RecognizeAll(r.Context(), s.session.Strokes())
	s.last = &out

	s.writeSuccess(w, out)
}

// GET /api/render?caption=<bool>
func (s *ApiServer) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	strokes := s.session.Strokes()
	if len(strokes) == 0 {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("canvas is empty"))
		return
	}

	caption := ""
	if r.URL.Query().Get("caption") != "false" {
		caption = s.last.Caption()
	}

	opts := render.Options{
		PenWidth: s.cfg.PenWidth,
		Margin:   s.cfg.RenderMargin,
	}
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, strokes, caption, opts); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to render canvas: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="canvas.png"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GET /api/version
func (s *ApiServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeSuccess(w, map[string]string{"version": version.Version})
}

func runServerMode(port string, cfg config.Config, classifier classify.Classifier) {
	server := NewApiServer(cfg, classifier)

	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/strokes", server.handleStrokes)
	mux.HandleFunc("/api/recognize", server.handleRecognize)
	mux.HandleFunc("/api/render", server.handleRender)
	mux.HandleFunc("/api/version", server.handleVersion)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root endpoint with API documentation
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
	<title>inkmath REST API</title>
</head>
<body>
	<h1>inkmath REST API</h1>
	<h2>Endpoints:</h2>
	<ul>
		<li>POST /api/strokes - Add a stroke</li>
		<li>GET /api/strokes - List strokes</li>
		<li>DELETE /api/strokes - Clear canvas (?last=true to undo)</li>
		<li>POST /api/recognize - Recognize the canvas</li>
		<li>GET /api/render - Render the canvas as PNG</li>
		<li>GET /api/version - Get version</li>
	</ul>
</body>
</html>
		`)
	})

	log.Info.Printf("Starting HTTP server on port %s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Error.Fatalf("Server failed: %v", err)
	}
}
