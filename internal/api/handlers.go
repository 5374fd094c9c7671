package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"

	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/internal/world"
	"github.com/VoidMesh/worldstream/services/grid"
)

// ViewSource is the read side of a running world.
type ViewSource interface {
	Current() world.View
	LoadedAt(x, y float64) (grid.Coord, bool)
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// LoadedResponse answers whether a world position is inside a loaded chunk.
type LoadedResponse struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Chunk  grid.Coord `json:"chunk"`
	Loaded bool       `json:"loaded"`
}

type Handler struct {
	source        ViewSource
	logger        *log.Logger
	upgrader      websocket.Upgrader
	watchInterval time.Duration
}

func NewHandler(source ViewSource, logger *log.Logger) *Handler {
	return &Handler{
		source:        source,
		logger:        logging.OrDefault(logger).With("component", "api"),
		upgrader:      newUpgrader(),
		watchInterval: defaultWatchInterval,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	view := h.source.Current()
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "worldstream",
		"frame":     view.Frame,
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.source.Current())
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	view := h.source.Current()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"stats":    view.Snapshot.Stats,
		"entities": view.Entities,
		"resident": len(view.Snapshot.Partitions),
	})
}

func (h *Handler) IsPositionLoaded(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid x coordinate", err)
		return
	}

	y, err := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid y coordinate", err)
		return
	}

	coord, loaded := h.source.LoadedAt(x, y)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, LoadedResponse{X: x, Y: y, Chunk: coord, Loaded: loaded})
}

func (h *Handler) GetChunk(w http.ResponseWriter, r *http.Request) {
	chunkX, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid chunk x coordinate", err)
		return
	}

	chunkY, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid chunk y coordinate", err)
		return
	}

	coord := grid.Coord{X: chunkX, Y: chunkY}
	for _, p := range h.source.Current().Snapshot.Partitions {
		if p.Coord == coord {
			render.Status(r, http.StatusOK)
			render.JSON(w, r, p)
			return
		}
	}

	h.renderError(w, r, http.StatusNotFound, "chunk not loaded", nil)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		h.logger.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
