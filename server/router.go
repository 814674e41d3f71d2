package server

import (
	"net/http"
	"time"

	"aeris-weather/logger"
	"aeris-weather/server/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ForecastRoutes interface {
	GetForecast(w http.ResponseWriter, r *http.Request)
	GetForecastSummary(w http.ResponseWriter, r *http.Request)
	GetForecastChart(w http.ResponseWriter, r *http.Request)
	InvalidateForecastCache(w http.ResponseWriter, r *http.Request)
}

type LocationRoutes interface {
	GetLocation(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastRoutes
	locationHandler LocationRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	forecastHandler ForecastRoutes,
	locationHandler LocationRoutes,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		locationHandler: locationHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestLogger)

	// expects ?q={location query}&days={1..10, optional}
	r.router.HandleFunc("/v1/forecast", r.forecastHandler.GetForecast).Methods("GET")
	r.router.HandleFunc("/v1/forecast/summary", r.forecastHandler.GetForecastSummary).Methods("GET")
	r.router.HandleFunc("/v1/forecast/chart", r.forecastHandler.GetForecastChart).Methods("GET")
	// without q every cached forecast is dropped
	r.router.HandleFunc("/v1/forecast/cache", r.forecastHandler.InvalidateForecastCache).Methods("DELETE")

	r.router.HandleFunc("/v1/location", r.locationHandler.GetLocation).Methods("GET")

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")
	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log := logger.For("Router")
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}
