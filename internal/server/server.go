package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nao1215/osintnexus/internal/database"
	applog "github.com/nao1215/osintnexus/internal/log"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// investigationLimit caps the investigations returned by the API.
const investigationLimit = 50

// Store records tool executions. *database.InvestigationDB implements it.
type Store interface {
	SaveInvestigation(ctx context.Context, rec database.Record) error
	ListInvestigations(ctx context.Context, limit int) ([]database.Record, error)
}

// Server is the mock backend.
type Server struct {
	router       *mux.Router
	store        Store
	logger       *slog.Logger
	latencyScale float64
	now          func() time.Time
	newID        func() string

	mu   sync.Mutex
	rand *rand.Rand
}

// Option configures a Server.
type Option func(*Server)

// WithStore records executions in store and lists them as investigations.
func WithStore(store Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLatencyScale multiplies the simulated module latencies.
// Zero answers immediately.
func WithLatencyScale(scale float64) Option {
	return func(s *Server) {
		s.latencyScale = scale
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithRand sets the random source of the generated dashboard data.
func WithRand(r *rand.Rand) Option {
	return func(s *Server) {
		s.rand = r
	}
}

// New creates a Server with the routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		logger:       applog.Discard(),
		latencyScale: 1,
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
		rand:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec // mock data
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, cors)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	apiRouter.HandleFunc("/dashboard/overview", s.handleOverview).Methods(http.MethodGet)
	apiRouter.HandleFunc("/modules", s.handleModules).Methods(http.MethodGet)
	apiRouter.HandleFunc("/modules/{id}/execute", s.handleExecute).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/investigations", s.handleInvestigations).Methods(http.MethodGet)
	apiRouter.HandleFunc("/notifications", s.handleNotifications).Methods(http.MethodGet)
	apiRouter.HandleFunc("/profile", s.handleProfile).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	return r
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	s.logger.Info("mock backend listening", "address", l.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("mock backend stopped")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, l)
}

// cors allows any origin, as the dashboard may be served from elsewhere.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
