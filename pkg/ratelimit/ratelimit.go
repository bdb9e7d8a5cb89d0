package ratelimit

import (
	"sync"
	"time"

	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/labstack/echo/v4"
)

// Policy describes a fixed-window limit: Requests per Window, keyed by
// whatever KeyFunc extracts from the request. A nil KeyFunc keys by client
// IP.
type Policy struct {
	Requests int
	Window   time.Duration
	KeyFunc  func(c echo.Context) string
}

type window struct {
	start time.Time
	count int
}

// Limiter counts requests per key in fixed windows. A key's count only resets
// once its window has fully elapsed, so no more than Requests ever pass
// inside one window. Elapsed windows are swept periodically.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	requests int
	window   time.Duration
	keyFunc  func(c echo.Context) string
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func New(policy Policy) *Limiter {
	keyFunc := policy.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}

	l := &Limiter{
		windows:  map[string]*window{},
		requests: policy.Requests,
		window:   policy.Window,
		keyFunc:  keyFunc,
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go l.cleanup()

	return l
}

// Allow reports whether a request for the given key may proceed. Rejected
// requests are not queued; the client has to come back in the next window.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &window{start: now}
		l.windows[key] = w
	}

	if w.count >= l.requests {
		return false
	}
	w.count++
	return true
}

// sweep drops keys whose window has elapsed so the map doesn't grow with
// every client address ever seen.
func (l *Limiter) sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, key)
		}
	}
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

// Stop shuts down the sweep goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// Middleware rejects requests over the policy's limit with a 429.
func Middleware(policy Policy) echo.MiddlewareFunc {
	limiter := New(policy)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(limiter.keyFunc(c)) {
				return errcodes.RateLimited()
			}
			return next(c)
		}
	}
}
