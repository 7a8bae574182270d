package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/constants"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	exempt   map[string]bool
}

func NewRateLimiter(perSecond float64, burst int, exemptIPs ...string) *RateLimiter {
	exempt := make(map[string]bool, len(exemptIPs))
	for _, ip := range exemptIPs {
		exempt[ip] = true
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		exempt:   exempt,
	}
}

func (l *RateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if l.exempt[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !l.getLimiter(ip).Allow() {
			common.RespondError(w, time.Now(), nil, constants.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
