package engine

import "time"

// ============================================================================
// ENGINE OPTIONS — Functional options for Summarize()
// ============================================================================

// Option configures Summarize via the functional options pattern.
type Option func(*config)

type config struct {
	TopK         int
	Reference    *time.Time // nil → latest order date in the dataset
	WindowMonths int
	MinStreak    int
}

// WithTopK sets how many top spenders the summary lists.
func WithTopK(k int) Option {
	return func(c *config) { c.TopK = k }
}

// WithReferenceDate pins the inactivity reference date. Without it the
// summary uses the most recent order date in the dataset, keeping results
// reproducible across runs.
func WithReferenceDate(t time.Time) Option {
	return func(c *config) { c.Reference = &t }
}

// WithInactivityWindow sets the inactivity window in calendar months.
func WithInactivityWindow(months int) Option {
	return func(c *config) { c.WindowMonths = months }
}

// WithMinStreak sets the minimum consecutive-month streak length for the
// summary's streak listing.
func WithMinStreak(n int) Option {
	return func(c *config) { c.MinStreak = n }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		TopK:         5,
		WindowMonths: 6,
		MinStreak:    3,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
