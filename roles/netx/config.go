package netx

// NetConfig holds configuration for the net role.
type NetConfig struct {
	// TimeoutSeconds bounds Get requests and Connect dials.
	TimeoutSeconds int `yaml:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" env:"TIMEOUTSECONDS"`

	// MaxBodyBytes caps how much of a response body Get will read.
	// Zero means no cap.
	MaxBodyBytes int64 `yaml:"max_body_bytes" toml:"max_body_bytes" json:"max_body_bytes" env:"MAXBODYBYTES"`

	// UserAgent is sent with every Get request.
	UserAgent string `yaml:"user_agent" toml:"user_agent" json:"user_agent" env:"USERAGENT"`
}
