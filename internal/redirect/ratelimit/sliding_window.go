package ratelimit

import (
	"math/rand/v2"
	"sync"
	"time"
)

const defaultSweepProbability = 0.01

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *SlidingWindow) {
		s.now = now
	}
}

// WithSweepProbability sets the fraction of calls that trigger a sweep.
func WithSweepProbability(p float64) Option {
	return func(s *SlidingWindow) {
		s.sweepProbability = p
	}
}

// WithRandom overrides the random source used to decide when to sweep.
func WithRandom(float64Fn func() float64) Option {
	return func(s *SlidingWindow) {
		s.random = float64Fn
	}
}

// SlidingWindow is safe for concurrent use.
type SlidingWindow struct {
	window time.Duration
	limit  int

	now              func() time.Time
	random           func() float64
	sweepProbability float64

	mu      sync.Mutex
	clients map[string][]time.Time
}

// New creates a limiter admitting at most limit requests per key within window.
func New(window time.Duration, limit int, opts ...Option) *SlidingWindow {
	s := &SlidingWindow{
		window:           window,
		limit:            limit,
		now:              time.Now,
		random:           rand.Float64,
		sweepProbability: defaultSweepProbability,
		clients:          make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow reports whether a request from key may proceed.
func (s *SlidingWindow) Allow(key string) bool {
	return s.Check(key).Allowed
}

// Check records an admission attempt for key and returns the full decision.
func (s *SlidingWindow) Check(key string) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)

	if s.random() < s.sweepProbability {
		s.sweepLocked(cutoff)
	}

	stamps := prune(s.clients[key], cutoff)

	if len(stamps) >= s.limit {
		retryAfter := s.window
		if len(stamps) > 0 {
			retryAfter = stamps[0].Add(s.window).Sub(now)
		}
		s.clients[key] = stamps
		return Decision{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			RetryAfter: retryAfter,
		}
	}

	stamps = append(stamps, now)
	s.clients[key] = stamps

	return Decision{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(stamps),
	}
}

// Len returns the number of tracked client keys.
func (s *SlidingWindow) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Sweep removes every key whose newest request has left the window.
func (s *SlidingWindow) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now().Add(-s.window))
}

func (s *SlidingWindow) sweepLocked(cutoff time.Time) {
	for key, stamps := range s.clients {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(s.clients, key)
		}
	}
}

// prune drops timestamps at or before cutoff. stamps is ordered oldest first.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return stamps
	}
	return append(stamps[:0], stamps[i:]...)
}
