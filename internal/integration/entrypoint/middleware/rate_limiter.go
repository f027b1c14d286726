package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/dto"
)

const (
	// DefaultMaxAttempts is the default number of allowed attempts per window.
	DefaultMaxAttempts = 5
	// DefaultWindowDuration is the default time window for rate limiting.
	DefaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "ratelimit:"
)

// RateLimitStore counts attempts per key inside fixed windows.
type RateLimitStore interface {
	// Increment records one attempt for key and returns the attempts made in the
	// current window, which starts with the first attempt and lasts window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

// MemoryStore is a process-local RateLimitStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Increment implements RateLimitStore.
func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		entry = &rateLimitEntry{resetTime: now.Add(window)}
		s.entries[key] = entry
	}
	entry.attempts++
	return entry.attempts, nil
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RedisStore shares attempt counters across API instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Increment implements RateLimitStore with INCR, setting EXPIRE on the first attempt.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := redisKeyPrefix + key

	attempts, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, err
	}
	if attempts == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, err
		}
	}
	return attempts, nil
}

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	store          RateLimitStore
	maxAttempts    int64
	windowDuration time.Duration
}

// NewRateLimiter creates a rate limiter. Non-positive settings fall back to the defaults.
func NewRateLimiter(store RateLimitStore, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = DefaultWindowDuration
	}
	return &RateLimiter{
		store:          store,
		maxAttempts:    int64(maxAttempts),
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		attempts, err := rl.store.Increment(c.Request.Context(), c.FullPath()+"|"+clientIP, rl.windowDuration)
		if err != nil {
			slog.Warn("Rate limit store unavailable", "error", err)
			c.Next()
			return
		}

		if attempts > rl.maxAttempts {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}
