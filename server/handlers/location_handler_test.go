package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aeris-weather/api/geolocation"
	services "aeris-weather/service"

	"github.com/stretchr/testify/assert"
)

// recordingLocator remembers the hint it was asked about.
type recordingLocator struct {
	hint string
}

func (l *recordingLocator) Locate(ctx context.Context, hint string) (geolocation.Coordinates, error) {
	l.hint = hint
	return geolocation.Coordinates{Lat: 59.91, Lon: 10.75}, nil
}

func TestLocationHandler_GetLocation(t *testing.T) {
	handler := NewLocationHandler(services.NewLocationService(geolocation.NewFixedLocator(31.5497, 74.3436)))

	rr := httptest.NewRecorder()
	handler.GetLocation(rr, httptest.NewRequest(http.MethodGet, "/v1/location", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"query": "31.5497,74.3436"}`, rr.Body.String())
}

func TestLocationHandler_ClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"forwarded first hop", "203.0.113.7, 10.0.0.1", "10.0.0.2:5555", "203.0.113.7"},
		{"remote addr", "", "198.51.100.4:41000", "198.51.100.4"},
		{"remote addr without port", "", "198.51.100.4", "198.51.100.4"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			locator := &recordingLocator{}
			handler := NewLocationHandler(services.NewLocationService(locator))
			req := httptest.NewRequest(http.MethodGet, "/v1/location", nil)
			req.RemoteAddr = test.remoteAddr
			if test.forwarded != "" {
				req.Header.Set(FORWARDED_FOR_HEADER, test.forwarded)
			}

			handler.GetLocation(httptest.NewRecorder(), req)

			assert.Equal(t, test.want, locator.hint)
		})
	}
}

func TestLocationHandler_Failures(t *testing.T) {
	tests := []struct {
		name       string
		service    *services.LocationService
		statusCode int
		message    string
	}{
		{
			name:       "unsupported",
			service:    services.NewLocationService(nil),
			statusCode: http.StatusNotImplemented,
			message:    "Geolocation is not supported.",
		},
		{
			name:       "lookup failure",
			service:    services.NewLocationService(geolocation.NewFailingLocator(errors.New("private range"))),
			statusCode: http.StatusBadGateway,
			message:    "Private range",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := NewLocationHandler(test.service)

			rr := httptest.NewRecorder()
			handler.GetLocation(rr, httptest.NewRequest(http.MethodGet, "/v1/location", nil))

			assert.Equal(t, test.statusCode, rr.Code)
			assert.Equal(t, test.message, decodeErrorResponse(t, rr).Message)
		})
	}
}

func TestPing(t *testing.T) {
	rr := httptest.NewRecorder()

	Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
