package feed

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/catalog"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/sample"
)

// Backend is the subset of api.Client the pages read from.
type Backend interface {
	Overview(ctx context.Context) (api.Overview, error)
	Modules(ctx context.Context) ([]catalog.Module, error)
	Investigations(ctx context.Context) ([]api.Investigation, error)
	Notifications(ctx context.Context) ([]api.Notification, error)
	Profile(ctx context.Context) (api.Profile, error)
}

// Result wraps page data with a flag telling whether it is sample data.
type Result[T any] struct {
	Data     T
	Fallback bool
}

// Dashboard is the data of the dashboard page.
type Dashboard struct {
	Overview api.Overview
	Modules  []catalog.Module
}

// Feed loads page data from a Backend.
type Feed struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time

	mu   sync.Mutex
	rand *rand.Rand
}

// Option configures a Feed.
type Option func(*Feed)

// WithLogger sets the logger used to report fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feed) {
		f.logger = logger
	}
}

// WithClock overrides the time source for sample timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) {
		f.now = now
	}
}

// WithRand sets the random source for sample statistics.
func WithRand(r *rand.Rand) Option {
	return func(f *Feed) {
		f.rand = r
	}
}

// New creates a Feed. backend may be nil, in which case every page shows
// sample data.
func New(backend Backend, opts ...Option) *Feed {
	f := &Feed{
		backend: backend,
		logger:  applog.Discard(),
		now:     time.Now,
		rand:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // demo statistics
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dashboard fetches the overview and the module list concurrently. If either
// call fails, both are replaced with sample data.
func (f *Feed) Dashboard(ctx context.Context) Result[Dashboard] {
	if f.backend != nil {
		var d Dashboard
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			o, err := f.backend.Overview(gctx)
			d.Overview = o
			return err
		})
		g.Go(func() error {
			m, err := f.backend.Modules(gctx)
			d.Modules = m
			return err
		})
		err := g.Wait()
		if err == nil {
			return Result[Dashboard]{Data: d}
		}
		f.warn("dashboard", err)
	}

	f.mu.Lock()
	overview := sample.Overview(f.now(), f.rand)
	f.mu.Unlock()
	return Result[Dashboard]{
		Data:     Dashboard{Overview: overview, Modules: catalog.All()},
		Fallback: true,
	}
}

// Investigations fetches the investigation list.
func (f *Feed) Investigations(ctx context.Context) Result[[]api.Investigation] {
	return load(ctx, f, "investigations", f.callInvestigations, sample.Investigations)
}

// Notifications fetches the notification list.
func (f *Feed) Notifications(ctx context.Context) Result[[]api.Notification] {
	return load(ctx, f, "notifications", f.callNotifications, sample.Notifications)
}

// Profile fetches the analyst profile.
func (f *Feed) Profile(ctx context.Context) Result[api.Profile] {
	return load(ctx, f, "profile", f.callProfile, sample.Profile)
}

func (f *Feed) callInvestigations(ctx context.Context) ([]api.Investigation, error) {
	return f.backend.Investigations(ctx)
}

func (f *Feed) callNotifications(ctx context.Context) ([]api.Notification, error) {
	return f.backend.Notifications(ctx)
}

func (f *Feed) callProfile(ctx context.Context) (api.Profile, error) {
	return f.backend.Profile(ctx)
}

func load[T any](ctx context.Context, f *Feed, page string, call func(context.Context) (T, error), fallback func(time.Time) T) Result[T] {
	if f.backend != nil {
		data, err := call(ctx)
		if err == nil {
			return Result[T]{Data: data}
		}
		f.warn(page, err)
	}
	return Result[T]{Data: fallback(f.now()), Fallback: true}
}

func (f *Feed) warn(page string, err error) {
	f.logger.Warn("backend unavailable, showing sample data",
		"page", page,
		"error", err,
	)
}
