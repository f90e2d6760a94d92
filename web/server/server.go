// Package server is the presentation layer: it exposes the renderer over
// HTTP, streaming animated frames to the browser via server-sent events.
// The core never touches a display surface; this layer owns encoding and
// delivery.
package server

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
	"github.com/glimt/go-whitted-raytracer/pkg/renderer"
	"github.com/glimt/go-whitted-raytracer/pkg/scene"
)

//go:embed index.html
var indexHTML []byte

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, logger: logger}
}

// FrameRequest represents a render request from the client
type FrameRequest struct {
	Scene    string  // Scene name (e.g. "mirror-room")
	Width    int     // Image width
	Height   int     // Image height
	Frames   int     // Number of animated frames to stream
	Tick     float64 // Animation tick of the first frame
	Exposure float64 // Tone-mapping exposure
	Gamma    float64 // Tone-mapping gamma
}

// FrameUpdate is a single streamed frame sent via SSE
type FrameUpdate struct {
	FrameNumber int     `json:"frameNumber"`
	TotalFrames int     `json:"totalFrames"`
	Tick        float64 `json:"tick"`
	ImageData   string  `json:"imageData"` // Base64 encoded PNG
	RenderMs    int64   `json:"renderMs"`
	BandMeanMs  float64 `json:"bandMeanMs"`
	BandStdDev  float64 `json:"bandStdDevMs"`
	LumMean     float64 `json:"luminanceMean"`
	LumStdDev   float64 `json:"luminanceStdDev"`
	IsComplete  bool    `json:"isComplete"`
}

// Handler returns the server's route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scene-map", s.handleSceneMap)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Serving on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleFrame renders a single frame and returns it as PNG
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	req, err := parseFrameRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, stats, err := s.renderFrame(req, req.Tick)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.logger.Printf("Rendered %s %dx%d in %v\n", req.Scene, req.Width, req.Height, stats.RenderTime)

	w.Header().Set("Content-Type", "image/png")
	png.Encode(w, img)
}

// handleRender streams animated frames via SSE. The scene is animated
// strictly between frames; a client disconnect stops the stream at the next
// frame boundary (frames are never abandoned mid-render).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseFrameRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	builder, err := scene.ByName(req.Scene)
	if err != nil {
		s.sendSSEError(w, flusher, err.Error())
		return
	}
	activeScene, err := builder(req.Width, req.Height)
	if err != nil {
		s.sendSSEError(w, flusher, err.Error())
		return
	}

	config := renderer.DefaultConfig()
	config.Exposure = req.Exposure
	config.Gamma = req.Gamma
	frameRenderer, err := renderer.NewRenderer(config, s.logger)
	if err != nil {
		s.sendSSEError(w, flusher, err.Error())
		return
	}
	defer frameRenderer.Close()

	ctx := r.Context()
	for frame := 0; frame < req.Frames; frame++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		tick := req.Tick + float64(frame)
		scene.Animate(activeScene, tick)

		img, stats, err := frameRenderer.RenderImage(activeScene, tick)
		if err != nil {
			s.sendSSEError(w, flusher, err.Error())
			return
		}

		var pngBuf bytes.Buffer
		if err := png.Encode(&pngBuf, img); err != nil {
			s.sendSSEError(w, flusher, err.Error())
			return
		}

		update := FrameUpdate{
			FrameNumber: frame + 1,
			TotalFrames: req.Frames,
			Tick:        tick,
			ImageData:   base64.StdEncoding.EncodeToString(pngBuf.Bytes()),
			RenderMs:    stats.RenderTime.Milliseconds(),
			BandMeanMs:  stats.BandMeanMs,
			BandStdDev:  stats.BandStdDevMs,
			LumMean:     stats.LuminanceMean,
			LumStdDev:   stats.LuminanceStdDev,
			IsComplete:  frame+1 == req.Frames,
		}
		if err := s.sendSSEEvent(w, flusher, "frame", update); err != nil {
			return
		}
	}
}

// renderFrame builds the requested scene and renders one frame of it
func (s *Server) renderFrame(req FrameRequest, tick float64) (*image.RGBA, renderer.FrameStats, error) {
	builder, err := scene.ByName(req.Scene)
	if err != nil {
		return nil, renderer.FrameStats{}, err
	}
	activeScene, err := builder(req.Width, req.Height)
	if err != nil {
		return nil, renderer.FrameStats{}, err
	}
	scene.Animate(activeScene, tick)

	config := renderer.DefaultConfig()
	config.Exposure = req.Exposure
	config.Gamma = req.Gamma
	frameRenderer, err := renderer.NewRenderer(config, s.logger)
	if err != nil {
		return nil, renderer.FrameStats{}, err
	}
	defer frameRenderer.Close()

	return frameRenderer.RenderImage(activeScene, tick)
}

// sendSSEEvent writes one named SSE event with a JSON payload
func (s *Server) sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// sendSSEError reports an error to the client over the event stream
func (s *Server) sendSSEError(w http.ResponseWriter, flusher http.Flusher, message string) {
	s.sendSSEEvent(w, flusher, "error", map[string]string{"error": message})
}

// parseFrameRequest extracts render parameters from query values, applying
// defaults and bounds. Oversized dimensions are rejected rather than
// clamped: a misbehaving client should hear about it.
func parseFrameRequest(values url.Values) (FrameRequest, error) {
	req := FrameRequest{
		Scene:    "mirror-room",
		Width:    320,
		Height:   320,
		Frames:   60,
		Tick:     0,
		Exposure: 1.0,
		Gamma:    1.0,
	}

	if v := values.Get("scene"); v != "" {
		req.Scene = v
	}
	var err error
	if req.Width, err = parseIntParam(values, "width", req.Width, 16, 1920); err != nil {
		return req, err
	}
	if req.Height, err = parseIntParam(values, "height", req.Height, 16, 1080); err != nil {
		return req, err
	}
	if req.Frames, err = parseIntParam(values, "frames", req.Frames, 1, 10000); err != nil {
		return req, err
	}
	if v := values.Get("tick"); v != "" {
		if req.Tick, err = strconv.ParseFloat(v, 64); err != nil {
			return req, fmt.Errorf("invalid tick: %w", err)
		}
	}
	if v := values.Get("exposure"); v != "" {
		if req.Exposure, err = strconv.ParseFloat(v, 64); err != nil || req.Exposure <= 0 {
			return req, fmt.Errorf("invalid exposure %q", v)
		}
	}
	if v := values.Get("gamma"); v != "" {
		if req.Gamma, err = strconv.ParseFloat(v, 64); err != nil || req.Gamma <= 0 {
			return req, fmt.Errorf("invalid gamma %q", v)
		}
	}
	if _, err := scene.ByName(req.Scene); err != nil {
		return req, err
	}

	return req, nil
}

func parseIntParam(values url.Values, name string, fallback, min, max int) (int, error) {
	v := values.Get(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s out of range [%d, %d]: %d", name, min, max, n)
	}
	return n, nil
}
