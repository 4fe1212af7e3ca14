package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"vetclinic-api/config"
	"vetclinic-api/pkg/response"

	"github.com/redis/go-redis/v9"
)

// fixed-window counter: first hit creates the key with the window TTL,
// later hits only increment, so the window cannot be extended by traffic
var rateLimitScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('PTTL', KEYS[1])
	return { current, ttl }
`)

type RateLimitMiddleware struct {
	cfg         config.RateLimitConfig
	redisClient *redis.Client
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig, redisClient *redis.Client) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// Limit caps requests per client IP to cfg.Requests per cfg.Window. The
// counter lives in Redis so all instances share one window. Redis being
// unreachable must not take the API down, so errors fail open.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	if !m.cfg.Enabled || m.redisClient == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("rate_limit:ip:%s", clientIP(r))

		vals, err := rateLimitScript.Run(r.Context(), m.redisClient,
			[]string{key}, m.cfg.Window.Milliseconds()).Int64Slice()
		if err != nil || len(vals) != 2 {
			next.ServeHTTP(w, r)
			return
		}

		current, ttlMs := vals[0], vals[1]
		remaining := int64(m.cfg.Requests) - current
		if remaining < 0 {
			remaining = 0
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.cfg.Requests))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if current > int64(m.cfg.Requests) {
			retryAfter := (ttlMs + 999) / 1000
			if retryAfter < 0 {
				retryAfter = 0
			}
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(w, http.StatusTooManyRequests,
				"Too many requests from this IP, please try again later", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the originating address, trusting proxy headers first
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx != -1 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
