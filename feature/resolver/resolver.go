package resolver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrExhausted is returned when every candidate source failed its probe.
var ErrExhausted = errors.New("no candidate source available")

// ErrSuperseded is returned when a newer resolution run started while this
// one was still probing. The stale run must not publish its result.
var ErrSuperseded = errors.New("resolution superseded by a newer request")

// ProbeFunc checks whether a single candidate is actually reachable. A nil
// error means the candidate can be served.
type ProbeFunc func(ctx context.Context, c Candidate) error

// Resolve walks the candidate list in order and returns the first candidate
// whose probe succeeds. Each probe gets its own timeout; a failed or timed-out
// probe moves on to the next candidate rather than aborting the run. Only when
// the whole list is exhausted does the resolution fail.
func Resolve(ctx context.Context, candidates []Candidate, probe ProbeFunc, timeout time.Duration) (Candidate, error) {
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return Candidate{}, err
		}

		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		err := probe(probeCtx, c)
		cancel()
		if err == nil {
			return c, nil
		}
	}
	return Candidate{}, ErrExhausted
}

// Session serializes resolution runs for one asset slot. Every new run bumps
// the generation and cancels the context of the run still in flight, so a
// rapid day-switch both invalidates the previous result and stops its
// remaining probes.
type Session struct {
	generation atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Begin starts a new run, cancelling any run still in flight. It returns the
// context the run must probe under and its generation token.
func (s *Session) Begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return runCtx, s.generation.Add(1)
}

// End releases the run's context. Stale runs were already cancelled by the
// Begin that superseded them, so only the current run has anything to free.
func (s *Session) End(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation.Load() == gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Current reports whether the given generation is still the latest run.
func (s *Session) Current(gen uint64) bool {
	return s.generation.Load() == gen
}
