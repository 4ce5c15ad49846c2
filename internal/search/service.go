// Package search is the presentation-facing entry point for lookups.
//
// A Service owns the load-once roster session and the artificial latency
// policy. The latency is a floor: the result is returned no sooner than
// the configured delay, but the lookup itself is never slowed down.
package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/lookup"
	"nathanbeddoewebdev/padron/internal/roster"

	"golang.org/x/sync/errgroup"
)

// DefaultDelay is the latency floor applied when no option overrides it.
const DefaultDelay = time.Second

// Result is the outcome of one search. Student is nil when nothing
// matched; Query is always the text exactly as submitted.
type Result struct {
	Query   string
	Label   string
	Student *domain.Student
}

// Found reports whether a record matched.
func (r Result) Found() bool {
	return r.Student != nil
}

// Service runs lookups against a session's roster.
type Service struct {
	session *roster.Session
	matcher lookup.Matcher
	delay   time.Duration
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDelay sets the latency floor. Zero or negative disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service over session using matcher for every query.
func New(session *roster.Session, matcher lookup.Matcher, opts ...Option) *Service {
	s := &Service{
		session: session,
		matcher: matcher,
		delay:   DefaultDelay,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Matcher returns the key strategy used by the service.
func (s *Service) Matcher() lookup.Matcher {
	return s.matcher
}

// Delay returns the configured latency floor.
func (s *Service) Delay() time.Duration {
	return s.delay
}

// Load triggers the session load (once) and returns the roster.
func (s *Service) Load(ctx context.Context) *roster.Roster {
	return s.session.Load(ctx)
}

// Search looks up raw.
//
// An empty (after trimming) query returns domain.ErrEmptyQuery at once,
// without waiting. Otherwise the lookup and the delay run concurrently
// and Search returns when both are done. A miss is a Result with a nil
// Student, not an error. The only other error is the context's, when it
// ends during the wait. Concurrent searches are independent.
func (s *Service) Search(ctx context.Context, raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, domain.ErrEmptyQuery
	}

	start := time.Now()
	r := s.session.Load(ctx)
	result := Result{Query: raw, Label: s.matcher.Label()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		student, err := lookup.Find(r, s.matcher, raw)
		switch {
		case err == nil:
			result.Student = &student
			return nil
		case errors.Is(err, domain.ErrNotFound):
			return nil
		default:
			return err
		}
	})
	if s.delay > 0 {
		g.Go(func() error {
			return wait(gctx, s.delay)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	s.logger.Debug("search completed",
		"key", result.Label,
		"found", result.Found(),
		"records", r.Len(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return result, nil
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LoadErr returns the error from the roster load, if any. It is nil
// before the first load.
func (s *Service) LoadErr() error {
	return s.session.Err()
}
