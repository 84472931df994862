package ezstd

import (
	"fmt"

	"github.com/golobby/config/v3"
)

// AggregatorConfigSection is the section name under which the aggregator's
// own configuration is registered.
const AggregatorConfigSection = "aggregator"

// AggregatorConfig enumerates the capability flags. Every recognized role is
// disabled by default; listing a role name under Enabled opts in. An empty
// list is a valid, inert configuration.
type AggregatorConfig struct {
	Enabled []string `yaml:"enabled" toml:"enabled" json:"enabled" env:"EZSTD_ENABLED"`
}

// ConfigProvider defines the interface for providing configuration objects.
type ConfigProvider interface {
	// GetConfig returns the configuration object.
	GetConfig() any
}

// StdConfigProvider provides a standard implementation of ConfigProvider.
type StdConfigProvider struct {
	cfg any
}

// GetConfig returns the configuration object.
func (s *StdConfigProvider) GetConfig() any {
	return s.cfg
}

// NewStdConfigProvider creates a new standard configuration provider.
func NewStdConfigProvider(cfg any) *StdConfigProvider {
	return &StdConfigProvider{cfg: cfg}
}

// Feeder populates a structure from a configuration source.
type Feeder interface {
	Feed(structure interface{}) error
}

// ComplexFeeder extends Feeder with per-key feeding, used to feed individual
// config sections from one document.
type ComplexFeeder interface {
	Feeder
	FeedKey(key string, target interface{}) error
}

// Config combines multiple feeders and keyed target structures. Feeders run
// in order, so later sources override earlier ones.
type Config struct {
	*config.Config
	StructKeys map[string]interface{}
}

// NewConfig creates a new configuration builder.
func NewConfig() *Config {
	return &Config{
		Config:     config.New(),
		StructKeys: make(map[string]interface{}),
	}
}

// AddFeeder appends a feeder, returning the Config for chaining.
func (c *Config) AddFeeder(f Feeder) *Config {
	c.Config.AddFeeder(f)
	return c
}

// AddStructKey registers a target structure to be fed from the given
// document key by every ComplexFeeder.
func (c *Config) AddStructKey(key string, target interface{}) *Config {
	c.StructKeys[key] = target
	return c
}

// Feed runs all feeders, then feeds each keyed structure from every
// ComplexFeeder.
func (c *Config) Feed() error {
	if err := c.Config.Feed(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFeederError, err)
	}

	for key, target := range c.StructKeys {
		for _, f := range c.Feeders {
			cf, ok := f.(ComplexFeeder)
			if !ok {
				continue
			}
			if err := cf.FeedKey(key, target); err != nil {
				return fmt.Errorf("%w: section %s: %w", ErrConfigFeederError, key, err)
			}
		}
	}
	return nil
}

// loadSectionConfigs feeds every registered config section, including the
// aggregator's own, from the given feeders. Sections whose providers hold
// nil configs are skipped.
func loadSectionConfigs(agg *StdAggregator, feeders []Feeder) error {
	if len(feeders) == 0 {
		return nil
	}
	cfg := NewConfig()
	for _, f := range feeders {
		cfg.AddFeeder(f)
	}
	for section, provider := range agg.ConfigSections() {
		if provider == nil {
			return fmt.Errorf("%w: section %s", ErrConfigProviderNil, section)
		}
		if provider.GetConfig() == nil {
			continue
		}
		cfg.AddStructKey(section, provider.GetConfig())
	}
	return cfg.Feed()
}
