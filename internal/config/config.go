// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// RemoteURL is the remote scoring endpoint. Empty disables remote
	// scoring entirely.
	RemoteURL string `koanf:"remote_url"`

	// RemoteEnabled gates remote-first scoring even when a URL is set.
	RemoteEnabled bool `koanf:"remote_enabled"`

	// RemotePairwise switches the adapter to one-call-per-candidate
	// mode for services that only score pairs.
	RemotePairwise bool `koanf:"remote_pairwise"`

	// RemoteTimeoutMS bounds each remote call.
	RemoteTimeoutMS int `koanf:"remote_timeout_ms"`

	// RemoteMaxConcurrency caps in-flight pairwise calls.
	RemoteMaxConcurrency int `koanf:"remote_max_concurrency"`

	// TopJobsLimit caps the job "top picks" list.
	TopJobsLimit int `koanf:"top_jobs_limit"`

	// AlumniLimit caps the alumni directory "top matches" list.
	AlumniLimit int `koanf:"alumni_limit"`

	// FeedLimit caps the opportunity feed.
	FeedLimit int `koanf:"feed_limit"`

	// MinJobScore drops job top picks scoring at or below this cutoff.
	MinJobScore int `koanf:"min_job_score"`

	// BranchBonus is the branch component awarded on a branch match.
	BranchBonus int `koanf:"branch_bonus"`

	// SkillWeight and BranchWeight combine the two scoring components.
	SkillWeight  float64 `koanf:"skill_weight"`
	BranchWeight float64 `koanf:"branch_weight"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8090",
		RemoteEnabled:        false,
		RemotePairwise:       false,
		RemoteTimeoutMS:      5000,
		RemoteMaxConcurrency: 4,
		TopJobsLimit:         5,
		AlumniLimit:          20,
		FeedLimit:            50,
		MinJobScore:          30,
		BranchBonus:          100,
		SkillWeight:          0.6,
		BranchWeight:         0.4,
	}
}
