package sched

// SchedConfig holds configuration for the sched role.
type SchedConfig struct {
	// WithSeconds switches cron expressions to the six-field form with a
	// leading seconds field.
	WithSeconds bool `yaml:"with_seconds" toml:"with_seconds" json:"with_seconds" env:"WITHSECONDS"`
}
