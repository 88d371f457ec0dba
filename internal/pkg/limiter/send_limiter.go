/*
Package limiter provides client-side rate limiting for outgoing chat traffic.

It utilizes the Token Bucket algorithm (rate.Limiter) to cap how quickly the
client hands messages to the chat service, protecting the shared room from an
accidental flood (e.g., a held-down enter key or a scripted sender).
*/
package limiter

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultSendRate allows one message per second on average.
	DefaultSendRate = rate.Limit(1)

	// DefaultSendBurst permits short bursts of consecutive messages.
	DefaultSendBurst = 5
)

// SendLimiter gates outgoing chat messages with a token bucket.
type SendLimiter struct {
	limiter *rate.Limiter
}

// NewSendLimiter creates a SendLimiter with rate r and burst capacity b.
func NewSendLimiter(r rate.Limit, b int) *SendLimiter {
	return &SendLimiter{
		limiter: rate.NewLimiter(r, b),
	}
}

// NewDefaultSendLimiter creates a SendLimiter with the default chat tuning.
func NewDefaultSendLimiter() *SendLimiter {
	return NewSendLimiter(DefaultSendRate, DefaultSendBurst)
}

// Allow reports whether one message may be sent now, consuming a token if so.
func (l *SendLimiter) Allow() bool {
	return l.limiter.Allow()
}

// TokensAt returns the number of tokens available at t, for logging.
func (l *SendLimiter) TokensAt(t time.Time) float64 {
	return l.limiter.TokensAt(t)
}
