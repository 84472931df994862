// Package fs provides the "fs" role: filesystem helpers that trade
// generality for ergonomics. Reads return owned byte slices, writes take a
// configured default mode, and Watch turns fsnotify plumbing into a channel
// of file contents.
package fs

import (
	"github.com/ezstd/ezstd"
)

// RoleName is the name of this role, used as its capability flag and
// namespace.
const RoleName = "fs"

// RoleVersion is the version of the fs role.
const RoleVersion = "0.2.1"

// FSRole implements the fs capability.
type FSRole struct {
	name   string
	config *FSConfig
	logger ezstd.Logger
}

// NewRole creates a new instance of the fs role.
func NewRole() ezstd.Role {
	return &FSRole{
		name: RoleName,
	}
}

// Name returns the name of the role.
func (r *FSRole) Name() string {
	return r.name
}

// Version returns the role's version.
func (r *FSRole) Version() string {
	return RoleVersion
}

// RegisterConfig registers the role's configuration with defaults.
func (r *FSRole) RegisterConfig(agg ezstd.Aggregator) error {
	defaultConfig := &FSConfig{
		MaxReadBytes:        0,
		WriteMode:           "0644",
		WatchDebounceMillis: 100,
	}
	agg.RegisterConfigSection(r.Name(), ezstd.NewStdConfigProvider(defaultConfig))
	return nil
}

// Init initializes the role from its registered configuration.
func (r *FSRole) Init(agg ezstd.Aggregator) error {
	cfg, err := agg.GetConfigSection(r.name)
	if err != nil {
		return err
	}
	r.config = cfg.GetConfig().(*FSConfig)
	r.logger = agg.Logger()

	if _, err := r.writeMode(); err != nil {
		return err
	}
	r.logger.Debug("fs role initialized", "maxReadBytes", r.config.MaxReadBytes)
	return nil
}

// Doc returns the role documentation inlined into the generated reference.
func (r *FSRole) Doc() string {
	return `Filesystem helpers. Reads return owned byte slices sized by the
` + "`max_read_bytes`" + ` cap; ` + "`watch`" + ` delivers debounced file contents over a channel.`
}

// Exports declares the items this role exposes through the aggregator.
func (r *FSRole) Exports() []ezstd.Export {
	return []ezstd.Export{
		{Name: "readFile", Description: "Read a whole file into an owned byte slice", Value: r.ReadFile},
		{Name: "readString", Description: "Read a whole file into a string", Value: r.ReadString},
		{Name: "writeFile", Description: "Write data to a file, creating it with the configured mode", Value: r.WriteFile},
		{Name: "appendFile", Description: "Append data to a file", Value: r.AppendFile},
		{Name: "exists", Description: "Report whether a path exists", Value: Exists},
		{Name: "glob", Description: "List paths matching a shell pattern", Value: Glob},
		{Name: "watch", Description: "Stream a file's contents on every change", Value: r.Watch},
	}
}
