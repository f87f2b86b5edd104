package handlers

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"ulascansenturk/weather-panel/internal/geolocation"
	"ulascansenturk/weather-panel/internal/panel"
	"ulascansenturk/weather-panel/internal/weather"

	"github.com/rs/zerolog/log"
)

//go:embed templates/panel.html
var templateFS embed.FS

var panelTemplate = template.Must(template.ParseFS(templateFS, "templates/panel.html"))

// Panel is the part of the controller the HTTP layer drives.
type Panel interface {
	SearchCity(ctx context.Context, raw string) error
	LocateMe(ctx context.Context, geolocator geolocation.Geolocator) error
	ToggleUnit() weather.DisplayUnit
	View() panel.View
	Subscribe() (<-chan struct{}, func())
}

// PanelHandler serves one process-wide panel to every viewer. Cycles it
// starts outlive the request that started them.
type PanelHandler struct {
	panel Panel
}

func NewPanelHandler(p Panel) *PanelHandler {
	return &PanelHandler{panel: p}
}

func (h *PanelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/":
		h.Index(w, r)
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/api/v1/panel":
		h.GetPanel(w, r)
	case r.URL.Path == "/api/v1/search":
		h.Search(w, r)
	case r.URL.Path == "/api/v1/location":
		h.Locate(w, r)
	case r.URL.Path == "/api/v1/unit/toggle":
		h.ToggleUnit(w, r)
	case r.URL.Path == "/api/v1/events":
		h.Events(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *PanelHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := panelTemplate.Execute(w, h.panel.View()); err != nil {
		log.Error().Err(err).Msg("failed to render panel page")
	}
}

func (h *PanelHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *PanelHandler) GetPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, h.panel.View())
}

// Search runs a cycle for the form or query value q. A rejected or failed
// cycle is panel state, so the response is still 200 with the Error view.
func (h *PanelHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := r.FormValue("q")

	if err := h.panel.SearchCity(context.WithoutCancel(r.Context()), city); err != nil {
		log.Debug().Err(err).Str("query", city).Msg("search ended in error phase")
	}

	respondWithJSON(w, http.StatusOK, h.panel.View())
}

func (h *PanelHandler) Locate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var geolocator geolocation.Geolocator
	switch {
	case req.Unsupported:
	case req.Error != nil:
		geolocator = geolocation.FromFailure(req.Error.Code, req.Error.Message)
	case req.Latitude != nil && req.Longitude != nil:
		coords := weather.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if err := geolocation.Validate(coords); err != nil {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid coordinates: %v", err))
			return
		}
		geolocator = geolocation.FromCoordinates(coords.Latitude, coords.Longitude)
	default:
		respondWithError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	if err := h.panel.LocateMe(context.WithoutCancel(r.Context()), geolocator); err != nil {
		log.Debug().Err(err).Msg("location lookup ended in error phase")
	}

	respondWithJSON(w, http.StatusOK, h.panel.View())
}

func (h *PanelHandler) ToggleUnit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.panel.ToggleUnit()
	respondWithJSON(w, http.StatusOK, h.panel.View())
}

// Events streams the view as server-sent events: one on connect, then one per
// state change until the client goes away.
func (h *PanelHandler) Events(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	changes, unsubscribe := h.panel.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeViewEvent(w, h.panel.View()); err != nil {
		log.Error().Err(err).Msg("failed to write event")
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-changes:
			if err := writeViewEvent(w, h.panel.View()); err != nil {
				log.Debug().Err(err).Msg("event stream closed")
				return
			}
			flusher.Flush()
		}
	}
}
