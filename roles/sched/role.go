// Package sched provides the "sched" role: cron-expression and
// fixed-interval job scheduling with a caller-owned lifecycle.
package sched

import (
	"github.com/ezstd/ezstd"
)

// RoleName is the name of this role, used as its capability flag and
// namespace.
const RoleName = "sched"

// RoleVersion is the version of the sched role.
const RoleVersion = "0.1.0"

// SchedRole implements the sched capability.
type SchedRole struct {
	name   string
	config *SchedConfig
	logger ezstd.Logger
}

// NewRole creates a new instance of the sched role.
func NewRole() ezstd.Role {
	return &SchedRole{
		name: RoleName,
	}
}

// Name returns the name of the role.
func (r *SchedRole) Name() string {
	return r.name
}

// Version returns the role's version.
func (r *SchedRole) Version() string {
	return RoleVersion
}

// RegisterConfig registers the role's configuration with defaults.
func (r *SchedRole) RegisterConfig(agg ezstd.Aggregator) error {
	defaultConfig := &SchedConfig{
		WithSeconds: false,
	}
	agg.RegisterConfigSection(r.Name(), ezstd.NewStdConfigProvider(defaultConfig))
	return nil
}

// Init initializes the role from its registered configuration.
func (r *SchedRole) Init(agg ezstd.Aggregator) error {
	cfg, err := agg.GetConfigSection(r.name)
	if err != nil {
		return err
	}
	r.config = cfg.GetConfig().(*SchedConfig)
	r.logger = agg.Logger()
	r.logger.Debug("sched role initialized", "withSeconds", r.config.WithSeconds)
	return nil
}

// Doc returns the role documentation inlined into the generated reference.
func (r *SchedRole) Doc() string {
	return `Scheduling helpers. ` + "`newScheduler`" + ` builds a cron-backed scheduler;
jobs run on cron expressions or fixed intervals and the caller owns Start/Stop.`
}

// Exports declares the items this role exposes through the aggregator.
func (r *SchedRole) Exports() []ezstd.Export {
	return []ezstd.Export{
		{Name: "newScheduler", Description: "Create a scheduler with the role's configuration", Value: r.NewScheduler},
		{Name: "validate", Description: "Validate a cron expression", Value: r.Validate},
	}
}
