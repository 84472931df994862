package proc

// ProcConfig holds configuration for the proc role.
type ProcConfig struct {
	// DefaultTimeoutSeconds bounds every run started with a context that
	// carries no deadline of its own. Zero disables the default bound.
	DefaultTimeoutSeconds int `yaml:"default_timeout_seconds" toml:"default_timeout_seconds" json:"default_timeout_seconds" env:"DEFAULTTIMEOUTSECONDS"`
}
