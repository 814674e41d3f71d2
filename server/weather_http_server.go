package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aeris-weather/config"
	"aeris-weather/logger"

	"github.com/gorilla/mux"
)

type WeatherHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	port            int
	shutdownTimeout time.Duration
}

func NewWeatherHttpServer(router *Router, muxRouter *mux.Router, port int) *WeatherHttpServer {
	return &WeatherHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		port:            port,
		shutdownTimeout: config.SERVER_SHUTDOWN_TIMEOUT,
	}
}

// Start serves until SIGINT or SIGTERM and then shuts down gracefully.
func (s *WeatherHttpServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done. In-flight requests get the shutdown timeout
// to complete.
func (s *WeatherHttpServer) Run(ctx context.Context) error {
	log := logger.For("WeatherHttpServer")
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exiting")
	return nil
}
