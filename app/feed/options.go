package feed

import "time"

// Retry backoff policies.
const (
	BackoffExponential = "exponential"
	BackoffFixed       = "fixed"
)

const maxBackoffDelay = 30 * time.Second

// Options controls fetch behavior. Zero values fall back to the defaults
// from DefaultOptions.
type Options struct {
	Timeout    time.Duration
	MaxRetries int // total attempt budget, not additional retries
	RetryDelay time.Duration
	Backoff    string
	UserAgent  string
}

func DefaultOptions() Options {
	return Options{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second,
		Backoff:    BackoffExponential,
		UserAgent:  "FinFeed/1.0",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.Timeout <= 0 {
		o.Timeout = def.Timeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = def.MaxRetries
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = def.RetryDelay
	}
	if o.Backoff == "" {
		o.Backoff = def.Backoff
	}
	if o.UserAgent == "" {
		o.UserAgent = def.UserAgent
	}

	return o
}

// backoffDelay returns the pause before the next attempt. Attempts are
// 1-based, so the first retry waits the base delay.
func backoffDelay(policy string, base time.Duration, attempt int) time.Duration {
	if policy == BackoffFixed {
		return base
	}

	delay := base * time.Duration(1<<uint(attempt-1))
	if delay > maxBackoffDelay || delay <= 0 {
		delay = maxBackoffDelay
	}
	return delay
}
