package controller

import (
	"checkups/pkg/logger"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const RateLimitedMessage = "Rate limit exceeded. Try again later."

type RateLimitOptions struct {
	// PerSecond is the sustained request rate per client IP. Zero disables
	// limiting.
	PerSecond float64
	Burst     int
	// IdleTTL evicts limiters of clients not seen for this long.
	IdleTTL time.Duration
	// TrustProxyHeaders keys clients by X-Forwarded-For or X-Real-IP. Enable
	// it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	opts RateLimitOptions
	now  func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
	swept   time.Time
}

func NewRateLimiter(opts RateLimitOptions) *RateLimiter {
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}

	return &RateLimiter{
		opts:    opts,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

// Allow consumes a token for ip.
func (l *RateLimiter) Allow(ip string) bool {
	if l.opts.PerSecond <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.swept) > l.opts.IdleTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > l.opts.IdleTTL {
				delete(l.clients, k)
			}
		}
		l.swept = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.opts.PerSecond), l.opts.Burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Middleware answers 429 with a JSON error once a client exceeds its rate.
// Clients are keyed by their connection address unless TrustProxyHeaders is set.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := RemoteIP(r)
		if l.opts.TrustProxyHeaders {
			ip = GetClientIP(r)
		}
		if !l.Allow(ip) {
			logger.Warn(r.Context(), "rate limit exceeded", zap.String("client_ip", ip))
			w.Header().Set("Retry-After", "1")
			WriteJSONError(w, http.StatusTooManyRequests, RateLimitedMessage)

			return
		}

		next.ServeHTTP(w, r)
	})
}
