package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token bucket per client key.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	now      func() time.Time
}

func NewVisitors(rps float64, burst int) *Visitors {
	return &Visitors{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// GetVisitor returns the limiter of key, creating it on first sight.
func (v *Visitors) GetVisitor(key string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	c, exists := v.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(v.rps, v.burst)
		v.visitors[key] = &clientLimiter{limiter, v.now()}
		return limiter
	}

	c.lastSeen = v.now()
	return c.limiter
}

// Allow reports whether key may make one more request now.
func (v *Visitors) Allow(key string) bool {
	return v.GetVisitor(key).Allow()
}

// Cleanup forgets visitors idle for longer than maxIdle and returns how many
// were removed.
func (v *Visitors) Cleanup(maxIdle time.Duration) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	for key, c := range v.visitors {
		if v.now().Sub(c.lastSeen) > maxIdle {
			delete(v.visitors, key)
			removed++
		}
	}
	return removed
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// StartVisitorCleanupLoop sweeps idle visitors every interval until ctx is done.
func (v *Visitors) StartVisitorCleanupLoop(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Cleanup(maxIdle)
		}
	}
}
