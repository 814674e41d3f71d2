package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aeris-weather/models"
	services "aeris-weather/service"
	"aeris-weather/util"
)

const (
	QUERY_ARG = "q"
	DAYS_ARG  = "days"
)

type ForecastHandler struct {
	forecastService *services.ForecastService
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// GetForecast handles GET /v1/forecast and relays the provider payload unchanged.
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	payload, err := h.forecastService.GetForecast(r.Context(), parseForecastRequest(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// GetForecastSummary handles GET /v1/forecast/summary
func (h *ForecastHandler) GetForecastSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.forecastService.GetForecastSummary(r.Context(), parseForecastRequest(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetForecastChart handles GET /v1/forecast/chart
func (h *ForecastHandler) GetForecastChart(w http.ResponseWriter, r *http.Request) {
	f, err := h.forecastService.GetDecodedForecast(r.Context(), parseForecastRequest(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}

	var page bytes.Buffer
	if err := util.RenderTemperatureChart(&page, f); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// InvalidateForecastCache handles DELETE /v1/forecast/cache
func (h *ForecastHandler) InvalidateForecastCache(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	if strings.TrimSpace(vals.Get(QUERY_ARG)) == "" {
		removed, err := h.forecastService.InvalidateAll()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
		return
	}

	req := parseForecastRequest(vals)
	if err := h.forecastService.Invalidate(req.Query, req.Days); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseForecastRequest leaves validation to the service. A days value that is
// not an integer is passed on as out of range.
func parseForecastRequest(vals url.Values) models.ForecastRequest {
	req := models.ForecastRequest{Query: vals.Get(QUERY_ARG)}
	if raw := vals.Get(DAYS_ARG); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			days = 0
		}
		req.Days = models.Days(days)
	}
	return req
}
