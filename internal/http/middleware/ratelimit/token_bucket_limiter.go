package ratelimit

import (
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped, 0 keeps them
	MaxBuckets int           // 0 is unlimited
}

// overflowRetry is reported to a new client while the bucket table is full.
const overflowRetry = time.Second

const minSweepInterval = time.Minute

// TokenBucketLimiter throttles each key (a client IP) with its own token bucket.
// A full table first drops idle buckets and only then turns new keys away.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.RWMutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	refilled time.Time
	seen     time.Time
}

// NewTokenBucketLimiter creates a limiter with explicit config and an injected clock.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes a token from key's bucket. When it refuses, the duration tells
// how long until a token is available.
func (l *TokenBucketLimiter) Allow(key string) (bool, time.Duration) {
	now := l.clock.Now()
	l.periodicSweep(now)

	b := l.lookup(key)
	if b == nil {
		if b = l.insert(key, now); b == nil {
			return false, overflowRetry
		}
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

// Len returns the number of tracked keys.
func (l *TokenBucketLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

func (l *TokenBucketLimiter) lookup(key string) *bucket {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buckets[key]
}

func (l *TokenBucketLimiter) insert(key string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b := l.buckets[key]; b != nil {
		return b
	}
	if l.full() {
		l.sweepLocked(now)
		if l.full() {
			return nil
		}
	}

	b := &bucket{tokens: float64(l.cfg.Burst), refilled: now, seen: now}
	l.buckets[key] = b
	return b
}

func (l *TokenBucketLimiter) full() bool {
	return l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets
}

func (l *TokenBucketLimiter) periodicSweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := max(minSweepInterval, l.cfg.TTL/2)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < interval {
		return
	}
	l.sweepLocked(now)
}

// sweepLocked drops buckets idle for longer than the TTL. l.mu must be held.
func (l *TokenBucketLimiter) sweepLocked(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if b.idleFor(now) > l.cfg.TTL {
			delete(l.buckets, key)
		}
	}
}

func (b *bucket) idleFor(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.seen)
}

func (b *bucket) take(now time.Time, rate, burst float64) (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if dt := now.Sub(b.refilled); dt > 0 {
		b.tokens = min(burst, b.tokens+dt.Seconds()*rate)
		b.refilled = now
	}
	b.seen = now

	if b.tokens < 1 {
		wait := (1 - b.tokens) / rate
		return false, time.Duration(wait * float64(time.Second))
	}
	b.tokens--
	return true, 0
}
