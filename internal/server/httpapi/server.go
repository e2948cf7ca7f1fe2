// Package httpapi exposes the authentication and task sync services over
// HTTP. All protected routes sit behind authMiddleware; handlers receive
// the verified identity through the request context, never from payloads.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tasksync/internal/logging"
	"tasksync/internal/server/metrics"
	"tasksync/internal/server/services"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	collector *metrics.Collector
	limiter   *RateLimiter
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService, collector *metrics.Collector, limiter *RateLimiter) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		collector: collector,
		limiter:   limiter,
	}
}

// Router assembles the route table.
//
// The credential endpoints carry an extra per-IP rate limit; everything
// under /tasks and GET /auth requires a verified token.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.metricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.collector.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.limiter.Middleware())
			r.Post("/signup", s.handleSignup)
			r.Post("/login", s.handleLogin)
		})

		r.Post("/tokenIsValid", s.handleTokenIsValid)

		r.With(s.authMiddleware).Get("/", s.handleMe)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Post("/", s.handleCreateTask)
		r.Get("/", s.handleListTasks)
		r.Delete("/", s.handleDeleteTask)
		r.Post("/sync", s.handleSyncBatch)
	})

	return r
}

// metricsMiddleware feeds status and latency into the collector.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.collector.RecordHTTPStatus(rec.status)
		s.collector.RecordRequestDuration(time.Since(start))
	})
}

// Run serves until ctx is cancelled, then shuts the listener down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
		s.limiter.Stop()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
