package roster

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loader fetches a workbook from a Source and parses it with a ColumnMap.
type Loader struct {
	source  Source
	columns ColumnMap
	logger  *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(source Source, columns ColumnMap, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{source: source, columns: columns, logger: logger}
}

// Load fetches and parses the workbook.
//
// The returned roster is never nil. If the fetch or the parse fails, the
// failure is logged, the roster is empty and the error is returned as
// well. Load does not retry.
func (l *Loader) Load(ctx context.Context) (*Roster, error) {
	start := time.Now()
	log := l.logger.With("source", l.source.String())

	rc, err := l.source.Open(ctx)
	if err != nil {
		log.Error("failed to fetch workbook", "error", err)
		return Empty(), err
	}
	defer rc.Close()

	r, err := Parse(rc, l.columns)
	if err != nil {
		log.Error("failed to parse workbook", "error", err)
		return Empty(), err
	}

	if missing := r.MissingColumns(); len(missing) > 0 {
		log.Warn("mapped columns not found in sheet", "sheet", r.Sheet(), "columns", missing)
	}
	log.Info("roster loaded",
		"sheet", r.Sheet(),
		"records", r.Len(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return r, nil
}

// Session loads a roster at most once and hands out the same snapshot to
// every caller afterwards.
type Session struct {
	loader *Loader
	once   sync.Once

	mu     sync.RWMutex
	roster *Roster
	err    error
	loaded bool
}

// NewSession wraps loader so that it runs once per session.
func NewSession(loader *Loader) *Session {
	return &Session{loader: loader}
}

// NewStaticSession returns a session already holding r. Intended for
// testing and for callers that built a roster by other means.
func NewStaticSession(r *Roster) *Session {
	s := &Session{roster: r, loaded: true}
	s.once.Do(func() {})
	return s
}

// Load runs the loader on first use and returns the roster. The context of
// the first call governs the fetch; later calls return immediately with
// the cached roster, which is empty if the load failed.
func (s *Session) Load(ctx context.Context) *Roster {
	s.once.Do(func() {
		r, err := s.loader.Load(ctx)
		s.mu.Lock()
		s.roster, s.err, s.loaded = r, err, true
		s.mu.Unlock()
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// Err returns the load error, or nil if the load succeeded or has not run.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loaded reports whether the load has completed (successfully or not).
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
