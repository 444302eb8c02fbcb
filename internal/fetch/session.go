package fetch

import (
	"context"
	"errors"
	"time"

	"foretagsradar/internal/domain"
)

var errEngineNotStarted = errors.New("rendered fetch engine not started for this session")

// Session owns the run-scoped fetch resources: one shared HTTP client and,
// when any configured source uses rendered fetches, one headless browser.
// It must be closed when the run ends.
type Session struct {
	static  *StaticFetcher
	engine  *Engine
	timeout time.Duration
}

// NewSession builds the fetch resources for one orchestrator run. The
// browser is only started when srcs contains a rendered source; a browser
// bootstrap failure aborts the run before any source is scraped.
func NewSession(ctx context.Context, srcs []*domain.SourceConfig, timeout time.Duration, headless bool) (*Session, error) {
	s := &Session{
		static:  NewStaticFetcher(timeout),
		timeout: timeout,
	}
	for _, src := range srcs {
		if src.Strategy == domain.FetchRendered {
			engine, err := NewEngine(ctx, headless)
			if err != nil {
				return nil, err
			}
			s.engine = engine
			break
		}
	}
	return s, nil
}

// FetcherFor returns the fetcher matching the source's strategy plus a
// release func for any per-source browsing context. The release func is
// always safe to call.
func (s *Session) FetcherFor(src *domain.SourceConfig) (Fetcher, func(), error) {
	if src.Strategy != domain.FetchRendered {
		return s.static, func() {}, nil
	}
	if s.engine == nil {
		return nil, nil, errEngineNotStarted
	}
	browserCtx, cancel := s.engine.NewBrowserContext()
	return NewRenderedFetcher(browserCtx, s.timeout), cancel, nil
}

// Close releases the browser engine, if one was started.
func (s *Session) Close() {
	if s.engine != nil {
		s.engine.Close()
	}
}
