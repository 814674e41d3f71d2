package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// MockForecastHandler is a mock implementation of ForecastRoutes.
type MockForecastHandler struct{}

func (h *MockForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "forecast"}`))
}

func (h *MockForecastHandler) GetForecastSummary(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "summary"}`))
}

func (h *MockForecastHandler) GetForecastChart(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html>chart</html>`))
}

func (h *MockForecastHandler) InvalidateForecastCache(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// MockLocationHandler is a mock implementation of LocationRoutes.
type MockLocationHandler struct{}

func (h *MockLocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"query": "1,2"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockForecastHandler{}, &MockLocationHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Forecast",
			method:     "GET",
			path:       "/v1/forecast?q=Lahore",
			statusCode: http.StatusOK,
			response:   `{"message": "forecast"}`,
		},
		{
			name:       "Get Forecast Summary",
			method:     "GET",
			path:       "/v1/forecast/summary?q=Lahore",
			statusCode: http.StatusOK,
			response:   `{"message": "summary"}`,
		},
		{
			name:       "Get Forecast Chart",
			method:     "GET",
			path:       "/v1/forecast/chart?q=Lahore",
			statusCode: http.StatusOK,
			response:   `<html>chart</html>`,
		},
		{
			name:       "Invalidate Forecast Cache",
			method:     "DELETE",
			path:       "/v1/forecast/cache",
			statusCode: http.StatusNoContent,
		},
		{
			name:       "Cache Route Rejects GET",
			method:     "GET",
			path:       "/v1/forecast/cache",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Get Location",
			method:     "GET",
			path:       "/v1/location",
			statusCode: http.StatusOK,
			response:   `{"query": "1,2"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   "{\"status\":\"pong\"}\n",
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	router := mux.NewRouter()
	NewRouter(&MockForecastHandler{}, &MockLocationHandler{}, router).RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Errorf("Expected Go runtime metrics in /metrics output")
	}
}
