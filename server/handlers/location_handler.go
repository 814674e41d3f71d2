package handlers

import (
	"net"
	"net/http"
	"strings"

	services "aeris-weather/service"
)

const FORWARDED_FOR_HEADER = "X-Forwarded-For"

type LocationHandler struct {
	locationService *services.LocationService
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// GetLocation handles GET /v1/location and answers {"query": "<lat>,<lon>"}.
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	query, err := h.locationService.CurrentQuery(r.Context(), clientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"query": query})
}

// clientIP prefers the first X-Forwarded-For hop over the socket peer.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(FORWARDED_FOR_HEADER); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
