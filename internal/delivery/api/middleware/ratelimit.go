package middleware

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
	"time"

	"taskman/config"
	"taskman/internal/delivery/api/response"
	domainerrors "taskman/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultMaxClients      = 10000
	limiterCleanupInterval = 5 * time.Minute
	limiterMaxIdle         = 30 * time.Minute
)

type limiterEntry struct {
	key        string
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client key. The least recently seen
// client is evicted once maxEntries keys are tracked.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*list.Element
	lru        *list.List
	rate       rate.Limit
	burst      int
	maxEntries int
	logger     *slog.Logger
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewRateLimiter starts a limiter allowing requestsPerSecond with the given burst per key.
func NewRateLimiter(requestsPerSecond float64, burst, maxEntries int, logger *slog.Logger) *RateLimiter {
	if maxEntries <= 0 {
		maxEntries = defaultMaxClients
	}
	if burst <= 0 {
		burst = 1
	}

	rl := &RateLimiter{
		limiters:   make(map[string]*list.Element),
		lru:        list.New(),
		rate:       rate.Limit(requestsPerSecond),
		burst:      burst,
		maxEntries: maxEntries,
		logger:     logger,
		stop:       make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if elem, ok := rl.limiters[key]; ok {
		rl.lru.MoveToFront(elem)
		entry := elem.Value.(*limiterEntry)
		entry.lastAccess = now

		return entry.limiter.AllowN(now, 1)
	}

	if len(rl.limiters) >= rl.maxEntries {
		rl.evictOldest()
	}

	entry := &limiterEntry{
		key:        key,
		limiter:    rate.NewLimiter(rl.rate, rl.burst),
		lastAccess: now,
	}
	rl.limiters[key] = rl.lru.PushFront(entry)

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.limiters)
}

// evictOldest must be called with mu held.
func (rl *RateLimiter) evictOldest() {
	elem := rl.lru.Back()
	if elem == nil {
		return
	}

	entry := elem.Value.(*limiterEntry)
	delete(rl.limiters, entry.key)
	rl.lru.Remove(elem)
}

// Cleanup drops keys idle for longer than maxIdle and returns how many were removed.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for elem := rl.lru.Back(); elem != nil; {
		entry := elem.Value.(*limiterEntry)
		if now.Sub(entry.lastAccess) <= maxIdle {
			break
		}
		prev := elem.Prev()
		delete(rl.limiters, entry.key)
		rl.lru.Remove(elem)
		removed++
		elem = prev
	}

	return removed
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := rl.Cleanup(limiterMaxIdle); removed > 0 {
				rl.logger.Debug("Rate limiter cleanup", slog.Int("removed", removed))
			}
		case <-rl.stop:
			return
		}
	}
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// RateLimitParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// RateLimitMiddleware throttles login attempts per client IP.
type RateLimitMiddleware struct {
	limiter *RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	var cfg config.RateLimitConfig
	if params.Config != nil && params.Config.RateLimit != nil {
		cfg = *params.Config.RateLimit
	}

	limiter := NewRateLimiter(float64(cfg.LoginRequestsPerSecond), cfg.LoginBurst, cfg.MaxClients, params.Logger)
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				limiter.Stop()

				return nil
			},
		})
	}

	return &RateLimitMiddleware{limiter: limiter, logger: params.Logger}
}

// Limit answers 429 once the client IP has used up its bucket for the route.
// Each limited route keeps separate buckets.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !m.limiter.Allow(c.Path() + " " + ip) {
			m.logger.Warn("Rate limit exceeded", slog.String("remote_ip", ip), slog.String("path", c.Path()))

			return response.HandleAppError(c, domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}
