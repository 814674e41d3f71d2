package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aeris-weather/logger"
	"aeris-weather/models"
	services "aeris-weather/service"
)

const MSG_INTERNAL_ERROR = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log := logger.For("handlers")
		log.Error().Err(err).Msg("error encoding response")
	}
}

// writeError maps a failure to its HTTP status and the {"message", "status"} body.
func writeError(w http.ResponseWriter, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log := logger.For("handlers")
		log.Error().Err(err).Int("status", status).Msg("request failed")
	}
	writeJSON(w, status, body)
}

func errorResponse(err error) (int, models.ErrorResponse) {
	if ce, ok := models.AsClientError(err); ok {
		switch ce.Kind {
		case models.InvalidArgument:
			return http.StatusBadRequest, models.ErrorResponse{Message: ce.Message}
		case models.ConfigurationError:
			return http.StatusInternalServerError, models.ErrorResponse{Message: ce.Message}
		case models.ProviderError:
			status := ce.HTTPStatus
			if status < 400 || status > 599 {
				status = http.StatusBadGateway
			}
			return status, models.ErrorResponse{Message: ce.Message, Status: ce.HTTPStatus}
		default:
			return http.StatusBadGateway, models.ErrorResponse{Message: ce.Message}
		}
	}

	var locErr *services.LocationError
	if errors.As(err, &locErr) {
		if locErr.Unsupported {
			return http.StatusNotImplemented, models.ErrorResponse{Message: locErr.Message}
		}
		return http.StatusBadGateway, models.ErrorResponse{Message: locErr.Message}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Message: MSG_INTERNAL_ERROR}
}

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
