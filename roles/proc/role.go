// Package proc provides the "proc" role: process-spawning helpers with
// captured, owned output and per-run identifiers for log correlation.
package proc

import (
	"github.com/ezstd/ezstd"
)

// RoleName is the name of this role, used as its capability flag and
// namespace.
const RoleName = "proc"

// RoleVersion is the version of the proc role.
const RoleVersion = "0.2.0"

// ProcRole implements the proc capability.
type ProcRole struct {
	name   string
	config *ProcConfig
	logger ezstd.Logger
}

// NewRole creates a new instance of the proc role.
func NewRole() ezstd.Role {
	return &ProcRole{
		name: RoleName,
	}
}

// Name returns the name of the role.
func (r *ProcRole) Name() string {
	return r.name
}

// Version returns the role's version.
func (r *ProcRole) Version() string {
	return RoleVersion
}

// RegisterConfig registers the role's configuration with defaults.
func (r *ProcRole) RegisterConfig(agg ezstd.Aggregator) error {
	defaultConfig := &ProcConfig{
		DefaultTimeoutSeconds: 60,
	}
	agg.RegisterConfigSection(r.Name(), ezstd.NewStdConfigProvider(defaultConfig))
	return nil
}

// Init initializes the role from its registered configuration.
func (r *ProcRole) Init(agg ezstd.Aggregator) error {
	cfg, err := agg.GetConfigSection(r.name)
	if err != nil {
		return err
	}
	r.config = cfg.GetConfig().(*ProcConfig)
	r.logger = agg.Logger()
	r.logger.Debug("proc role initialized", "defaultTimeoutSeconds", r.config.DefaultTimeoutSeconds)
	return nil
}

// Doc returns the role documentation inlined into the generated reference.
func (r *ProcRole) Doc() string {
	return `Process helpers. ` + "`run`" + ` executes a command with a default timeout and
returns owned stdout/stderr plus a run ID that also appears in the logs.`
}

// Exports declares the items this role exposes through the aggregator.
func (r *ProcRole) Exports() []ezstd.Export {
	return []ezstd.Export{
		{Name: "run", Description: "Run a command, capturing stdout and stderr", Value: r.Run},
		{Name: "capture", Description: "Run a command and return trimmed stdout", Value: r.Capture},
	}
}
