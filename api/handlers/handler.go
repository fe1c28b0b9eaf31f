package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/jusunglee/metro-go/internal/models"
	"github.com/jusunglee/metro-go/internal/render"
	"github.com/jusunglee/metro-go/pkg/metro"
)

const defaultNearbyLimit = 5

// Handler handles HTTP requests
type Handler struct {
	client metro.Client
}

// NewHandler creates a new HTTP handler
func NewHandler(client metro.Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods("GET")
	r.HandleFunc("/health", h.handleHealth).Methods("GET")
	r.HandleFunc("/stations", h.handleStations).Methods("GET")
	r.HandleFunc("/stations/nearby", h.handleNearby).Methods("GET")
	r.HandleFunc("/stations/{names}", h.handleByNames).Methods("GET")
	r.HandleFunc("/lines", h.handleLines).Methods("GET")
	r.HandleFunc("/lines/{line}", h.handleByLine).Methods("GET")
	r.HandleFunc("/route", h.handleRoute).Methods("GET")
	r.HandleFunc("/route/map", h.handleRouteMap).Methods("GET")
}

// Response wraps API responses
type Response struct {
	Data    interface{} `json:"data"`
	Updated string      `json:"updated,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"title": "metro-go",
		"endpoints": []string{
			"/stations",
			"/stations/nearby?lat=&lon=&limit=",
			"/stations/{names}",
			"/lines",
			"/lines/{line}",
			"/route?from=&to=&format=json|html|text",
			"/route/map?from=&to=",
		},
	}
	h.writeJSON(w, response)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	stations, err := h.client.GetStations()
	if err != nil {
		h.writeError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"stations": len(stations),
		"loaded":   h.client.GetLoadedAt().Format(time.RFC3339),
	})
}

func (h *Handler) handleStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.client.GetStations()
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeData(w, stations)
}

func (h *Handler) handleNearby(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")

	if latStr == "" || lonStr == "" {
		h.writeError(w, "Missing lat/lon parameter", http.StatusBadRequest)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		h.writeError(w, "Invalid lat parameter", http.StatusBadRequest)
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		h.writeError(w, "Invalid lon parameter", http.StatusBadRequest)
		return
	}

	limit := defaultNearbyLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			h.writeError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
	}

	stations, err := h.client.GetStationsByLocation(lat, lon, limit)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeStationsResponse(w, stations)
}

func (h *Handler) handleByNames(w http.ResponseWriter, r *http.Request) {
	names := strings.Split(mux.Vars(r)["names"], ",")

	stations, err := h.client.GetStationsByNames(names)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	h.writeStationsResponse(w, stations)
}

func (h *Handler) handleLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.client.GetLines()
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeData(w, lines)
}

func (h *Handler) handleByLine(w http.ResponseWriter, r *http.Request) {
	line := mux.Vars(r)["line"]

	stations, err := h.client.GetStationsByLine(line)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	h.writeStationsResponse(w, stations)
}

func (h *Handler) handleRoute(w http.ResponseWriter, r *http.Request) {
	it, ok := h.planFromQuery(w, r)
	if !ok {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		h.writeData(w, it)
	case "html":
		page, err := render.InfoHTML(it)
		if err != nil {
			h.writeError(w, "Failed to render route", http.StatusInternalServerError)
			return
		}
		h.writeBody(w, "text/html; charset=utf-8", []byte(page))
	case "text":
		var buf bytes.Buffer
		if err := render.Text(&buf, it); err != nil {
			h.writeError(w, "Failed to render route", http.StatusInternalServerError)
			return
		}
		h.writeBody(w, "text/plain; charset=utf-8", buf.Bytes())
	default:
		h.writeError(w, "Invalid format parameter", http.StatusBadRequest)
	}
}

func (h *Handler) handleRouteMap(w http.ResponseWriter, r *http.Request) {
	it, ok := h.planFromQuery(w, r)
	if !ok {
		return
	}

	page, err := render.MapHTML(it)
	if err != nil {
		h.writeError(w, "Failed to render map", http.StatusInternalServerError)
		return
	}
	h.writeBody(w, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) planFromQuery(w http.ResponseWriter, r *http.Request) (models.Itinerary, bool) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	it, err := h.client.PlanRoute(from, to)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, metro.ErrStationRequired) {
			status = http.StatusBadRequest
		}
		h.writeError(w, err.Error(), status)
		return models.Itinerary{}, false
	}
	return it, true
}

func (h *Handler) writeStationsResponse(w http.ResponseWriter, stations []models.Station) {
	// Convert stations to response format
	data := make([]models.StationResponse, len(stations))
	for i, station := range stations {
		data[i] = station.ConvertToResponse()
	}
	h.writeData(w, data)
}

func (h *Handler) writeData(w http.ResponseWriter, data interface{}) {
	response := Response{Data: data}
	if loaded := h.client.GetLoadedAt(); !loaded.IsZero() {
		response.Updated = loaded.Format(time.RFC3339)
	}
	h.writeJSON(w, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.writeError(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
