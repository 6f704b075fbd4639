package llm

import (
	"log/slog"
	"regexp"
	"strconv"
	"sync"
	"time"
)

// defaultCooldown applies when the provider gives no retry delay.
const defaultCooldown = 24 * time.Hour

// QuotaBreaker stops calling a healthy-but-rate-limited upstream for a
// cool-down period. Closed passes calls through; a rate-limit-class error
// opens it; it closes again once the reset time elapses. Safe for
// concurrent use; last writer wins on overlapping trips.
type QuotaBreaker struct {
	exceededAt time.Time
	resetAt    time.Time
	nowFn      func() time.Time
	exceeded   bool
	mu         sync.Mutex
}

// NewQuotaBreaker creates a breaker in the closed (available) state.
func NewQuotaBreaker() *QuotaBreaker {
	return &QuotaBreaker{nowFn: time.Now}
}

// newQuotaBreakerAt creates a breaker with an injected clock for tests.
func newQuotaBreakerAt(nowFn func() time.Time) *QuotaBreaker {
	return &QuotaBreaker{nowFn: nowFn}
}

// Allow reports whether an upstream call may proceed. A breaker whose
// cool-down has elapsed closes itself on the way through.
func (b *QuotaBreaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.exceeded {
		return true
	}

	if b.nowFn().After(b.resetAt) {
		b.exceeded = false
		slog.Info("quota breaker reset, resuming upstream calls")
		return true
	}

	return false
}

// Trip opens the breaker. retryAfter comes from the provider when present;
// zero means the default 24-hour cool-down.
func (b *QuotaBreaker) Trip(retryAfter time.Duration) {
	if retryAfter <= 0 {
		retryAfter = defaultCooldown
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.nowFn()
	b.exceeded = true
	b.exceededAt = now
	b.resetAt = now.Add(retryAfter)

	slog.Warn("quota breaker tripped",
		"retry_after", retryAfter,
		"reset_at", b.resetAt)
}

// Open reports whether the breaker is currently open without side effects.
func (b *QuotaBreaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exceeded && !b.nowFn().After(b.resetAt)
}

// retryDelayRe matches short provider delay strings such as "21s", "5m", "1h".
var retryDelayRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(s|m|h)`)

// ParseRetryDelay extracts a retry delay from provider error text.
// Returns zero when no delay is present.
func ParseRetryDelay(s string) time.Duration {
	m := retryDelayRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	var unit time.Duration
	switch m[2] {
	case "s":
		unit = time.Second
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	}

	return time.Duration(value * float64(unit))
}
