package feeders

import "github.com/golobby/config/v3/pkg/feeder"

// EnvFeeder reads environment variables into struct fields tagged `env`.
type EnvFeeder = feeder.Env

// NewEnvFeeder creates a new EnvFeeder.
func NewEnvFeeder() EnvFeeder {
	return EnvFeeder{}
}
