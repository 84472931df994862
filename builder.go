package ezstd

import (
	"context"
	"fmt"
)

// Option represents a functional option for configuring an aggregator.
type Option func(*AggregatorBuilder) error

// AggregatorBuilder constructs aggregators step by step: register the
// recognized roles, pick the capability flags, then Build.
type AggregatorBuilder struct {
	logger         Logger
	configProvider ConfigProvider
	roles          []Role
	capabilities   []string
	feeders        []Feeder
	observers      []ObserverFunc
}

// NewAggregatorBuilder creates an empty builder.
func NewAggregatorBuilder() *AggregatorBuilder {
	return &AggregatorBuilder{
		roles:        make([]Role, 0),
		capabilities: make([]string, 0),
		observers:    make([]ObserverFunc, 0),
	}
}

// NewAggregator creates an aggregator with the provided options. This is the
// main entry point of the package.
func NewAggregator(opts ...Option) (Aggregator, error) {
	builder := NewAggregatorBuilder()
	for _, opt := range opts {
		if err := opt(builder); err != nil {
			return nil, err
		}
	}
	return builder.Build()
}

// WithLogger sets the aggregator logger. A logger is required.
func WithLogger(logger Logger) Option {
	return func(b *AggregatorBuilder) error {
		b.logger = logger
		return nil
	}
}

// WithConfigProvider sets the aggregator-level config provider. When unset,
// Build registers an empty AggregatorConfig.
func WithConfigProvider(cp ConfigProvider) Option {
	return func(b *AggregatorBuilder) error {
		b.configProvider = cp
		return nil
	}
}

// WithRoles registers roles as recognized. Registration alone enables
// nothing; combine with WithCapabilities or config-fed flags.
func WithRoles(roles ...Role) Option {
	return func(b *AggregatorBuilder) error {
		b.roles = append(b.roles, roles...)
		return nil
	}
}

// WithCapabilities names the roles to enable. Names are validated during
// Build; an unknown name fails the whole build.
func WithCapabilities(names ...string) Option {
	return func(b *AggregatorBuilder) error {
		b.capabilities = append(b.capabilities, names...)
		return nil
	}
}

// WithFeeders adds configuration feeders. Feeders populate the aggregator
// config section (capability flags) and every role config section before the
// roles initialize.
func WithFeeders(feeders ...Feeder) Option {
	return func(b *AggregatorBuilder) error {
		b.feeders = append(b.feeders, feeders...)
		return nil
	}
}

// WithObserver registers an observer for composition events.
func WithObserver(observer ObserverFunc) Option {
	return func(b *AggregatorBuilder) error {
		b.observers = append(b.observers, observer)
		return nil
	}
}

// Build composes the aggregator: registers roles, feeds configuration,
// enables the selected capabilities and freezes the surface. Every failure
// out of Build satisfies IsConfigurationError.
func (b *AggregatorBuilder) Build() (Aggregator, error) {
	if b.logger == nil {
		return nil, ErrLoggerNotSet
	}

	flags := &AggregatorConfig{}
	cp := b.configProvider
	if cp == nil {
		cp = NewStdConfigProvider(flags)
	} else if fc, ok := cp.GetConfig().(*AggregatorConfig); ok {
		flags = fc
	}

	agg := NewStdAggregator(cp, b.logger)
	agg.feeders = b.feeders
	agg.RegisterConfigSection(AggregatorConfigSection, NewStdConfigProvider(flags))

	for _, observer := range b.observers {
		if err := agg.RegisterObserver(observer); err != nil {
			return nil, err
		}
	}
	for _, role := range b.roles {
		if err := agg.RegisterRole(role); err != nil {
			return nil, err
		}
	}

	// Flags may arrive from options, from fed config, or both.
	if err := loadSectionConfigs(agg, b.feeders); err != nil {
		return nil, err
	}
	selected := append([]string{}, b.capabilities...)
	selected = append(selected, flags.Enabled...)

	if err := agg.Enable(selected...); err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}

	agg.Freeze()
	agg.notifyObservers(context.Background(), NewCloudEvent(
		EventTypeAggregatorBuilt, "builder",
		map[string]any{"namespaces": agg.Namespaces()}, nil))
	return agg, nil
}
