package configs

import "time"

// Budget configures enforcement. DefaultCheckFrequency is the budget check
// interval in minutes for campaigns without their own override.
type Budget struct {
	DefaultCheckFrequency int `env:"DEFAULT_CHECK_FREQUENCY" envDefault:"15"`
	// CheckOnSpend enables the opportunistic budget check after each spend
	// event.
	CheckOnSpend bool `env:"CHECK_ON_SPEND" envDefault:"true"`
	// Workers bounds per-batch parallelism.
	Workers int `env:"WORKERS" envDefault:"8"`
	// MaxRetries bounds retries of a campaign transaction that hit lock
	// contention.
	MaxRetries           int           `env:"MAX_RETRIES" envDefault:"3"`
	RetryInitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL" envDefault:"50ms"`
}

// DefaultInterval returns DefaultCheckFrequency as a duration.
func (b Budget) DefaultInterval() time.Duration {
	return time.Duration(b.DefaultCheckFrequency) * time.Minute
}
