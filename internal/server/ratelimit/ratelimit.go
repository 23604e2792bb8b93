// Package ratelimit limits requests per client and endpoint tier with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// Info describes the limit state after a request.
type Info struct {
	Allowed    bool
	Tier       string
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	// DefaultLimit and DefaultWindow apply to requests matching no tier.
	DefaultLimit  int
	DefaultWindow time.Duration
	// IdleTTL is how long an unused bucket is kept.
	IdleTTL time.Duration
	Tiers   []Tier
	// Exempt client ids are never limited.
	Exempt map[string]bool
}

// DefaultConfig returns the service defaults.
func DefaultConfig(enabled bool) Config {
	return Config{
		Enabled:       enabled,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		IdleTTL:       time.Hour,
		Tiers:         DefaultTiers(),
	}
}

type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	updated    time.Time
}

func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.updated).Seconds()
	if elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	}
	b.updated = now
}

// untilFull returns how long until the bucket is full again.
func (b *bucket) untilFull() time.Duration {
	missing := b.capacity - b.tokens
	if missing <= 0 {
		return 0
	}
	return time.Duration(missing / b.refillRate * float64(time.Second))
}

// untilNext returns how long until one token is available.
func (b *bucket) untilNext() time.Duration {
	missing := 1 - b.tokens
	if missing <= 0 {
		return 0
	}
	return time.Duration(missing / b.refillRate * float64(time.Second))
}

// Limiter tracks one bucket per client and tier. It is safe for concurrent use.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a Limiter. When sweep is positive, idle buckets are
// evicted on that interval until Stop is called.
func NewLimiter(cfg Config, sweep time.Duration) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if cfg.Enabled && sweep > 0 {
		go l.sweepLoop(sweep)
	}
	return l
}

// Allow consumes a token for clientID on the tier matching path and method.
func (l *Limiter) Allow(clientID, path, method string) Info {
	if !l.cfg.Enabled || l.cfg.Exempt[clientID] {
		return Info{Allowed: true}
	}

	tier := MatchTier(path, method, l.cfg.Tiers)
	if tier == nil {
		tier = &Tier{Name: "default", Limit: l.cfg.DefaultLimit, Window: l.cfg.DefaultWindow}
	}
	if tier.Limit <= 0 || tier.Window <= 0 {
		return Info{Allowed: true, Tier: tier.Name}
	}

	now := l.now()
	key := clientID + "|" + tier.Name

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		capacity := tier.Burst
		if capacity <= 0 {
			capacity = tier.Limit
		}
		b = &bucket{
			capacity:   float64(capacity),
			refillRate: float64(tier.Limit) / tier.Window.Seconds(),
			tokens:     float64(capacity),
			updated:    now,
		}
		l.buckets[key] = b
	}
	b.refill(now)

	info := Info{Tier: tier.Name, Limit: tier.Limit}
	if b.tokens >= 1 {
		b.tokens--
		info.Allowed = true
	} else {
		info.RetryAfter = b.untilNext()
	}
	info.Remaining = int(b.tokens)
	info.ResetTime = now.Add(b.untilFull())
	return info
}

// Sweep evicts buckets idle for longer than the configured TTL and returns how many were removed.
func (l *Limiter) Sweep() int {
	ttl := l.cfg.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if b.updated.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

func (l *Limiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-l.stop:
			return
		}
	}
}

// Stop ends the sweep goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
