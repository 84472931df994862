package ezstd

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Aggregator composes registered roles into one browsable surface. All
// composition happens before the surface freezes; afterwards the aggregator
// is read-only and every operation besides Resolve, Reference and the
// accessors fails with ErrSurfaceFrozen.
type Aggregator interface {
	// ConfigProvider retrieves the aggregator-level config provider.
	ConfigProvider() ConfigProvider

	// RegisterConfigSection registers a configuration section, normally
	// called by a role's RegisterConfig.
	RegisterConfigSection(section string, cp ConfigProvider)

	// ConfigSections retrieves all registered configuration sections.
	ConfigSections() map[string]ConfigProvider

	// GetConfigSection retrieves a configuration section by name.
	GetConfigSection(section string) (ConfigProvider, error)

	// RegisterRole makes a role known to the aggregator without enabling
	// it. Names must be unique and dot-free.
	RegisterRole(role Role) error

	// Enable turns on the named capabilities. Unknown names fail with
	// ErrUnknownRole before any role is touched; either every named role
	// ends up enabled or none does. Enabling an already-enabled role is a
	// no-op.
	Enable(names ...string) error

	// Resolve looks up a qualified "<role>.<item>" name and returns the
	// exported item as an owned value. It fails with ErrRoleNotEnabled or
	// ErrExportNotFound; both satisfy IsNotFound.
	Resolve(qualified string) (any, error)

	// Roles lists every known role with its enabled state.
	Roles() []RoleInfo

	// Namespaces lists the namespaces of enabled roles in sorted order.
	Namespaces() []string

	// Exports returns the export list of an enabled role.
	Exports(role string) ([]Export, error)

	// Reference renders the generated reference document for the enabled
	// surface.
	Reference() string

	// Freeze seals the surface. Subsequent RegisterRole and Enable calls
	// fail with ErrSurfaceFrozen.
	Freeze()

	// Logger returns the aggregator's logger.
	Logger() Logger
}

// StdAggregator is the standard Aggregator implementation.
type StdAggregator struct {
	cfgProvider ConfigProvider
	cfgSections map[string]ConfigProvider
	registry    RoleRegistry
	enabled     map[string]bool
	exports     map[string]map[string]Export
	logger      Logger
	observers   []ObserverFunc
	feeders     []Feeder
	frozen      bool
}

// NewStdAggregator creates a new aggregator with no roles registered.
// Most callers should use NewAggregator with options instead.
func NewStdAggregator(cp ConfigProvider, logger Logger) *StdAggregator {
	return &StdAggregator{
		cfgProvider: cp,
		cfgSections: make(map[string]ConfigProvider),
		registry:    make(RoleRegistry),
		enabled:     make(map[string]bool),
		exports:     make(map[string]map[string]Export),
		logger:      logger,
	}
}

// ConfigProvider retrieves the aggregator-level config provider.
func (agg *StdAggregator) ConfigProvider() ConfigProvider {
	return agg.cfgProvider
}

// RegisterConfigSection registers a configuration section with the aggregator.
func (agg *StdAggregator) RegisterConfigSection(section string, cp ConfigProvider) {
	agg.cfgSections[section] = cp
}

// ConfigSections retrieves all registered configuration sections.
func (agg *StdAggregator) ConfigSections() map[string]ConfigProvider {
	return agg.cfgSections
}

// GetConfigSection retrieves a configuration section.
func (agg *StdAggregator) GetConfigSection(section string) (ConfigProvider, error) {
	cp, exists := agg.cfgSections[section]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigSectionNotFound, section)
	}
	return cp, nil
}

// RegisterRole adds a role to the set of known roles. The role stays
// disabled until Enable is called with its name.
func (agg *StdAggregator) RegisterRole(role Role) error {
	if agg.frozen {
		return fmt.Errorf("%w: cannot register roles", ErrSurfaceFrozen)
	}
	if role == nil {
		return ErrRoleNil
	}
	name := role.Name()
	if name == "" || strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q", ErrRoleNameInvalid, name)
	}
	if _, exists := agg.registry[name]; exists {
		return fmt.Errorf("%w: %s", ErrRoleNameCollision, name)
	}
	agg.registry[name] = role
	agg.logger.Debug("role registered", "role", name)
	return nil
}

// Enable turns on the named capabilities. The whole request is validated
// against the registry first, so a single unknown name leaves the enabled
// set untouched. Role initialization errors likewise roll back: exports are
// staged per role and only committed once every requested role initialized.
func (agg *StdAggregator) Enable(names ...string) error {
	if agg.frozen {
		return fmt.Errorf("%w: cannot enable roles", ErrSurfaceFrozen)
	}

	var pending []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if _, known := agg.registry[name]; !known {
			return fmt.Errorf("%w: %s", ErrUnknownRole, name)
		}
		// A name may arrive more than once, e.g. flagged on the command
		// line and listed in fed config; Init still runs exactly once.
		if !agg.enabled[name] && !seen[name] {
			seen[name] = true
			pending = append(pending, name)
		}
	}

	for _, name := range pending {
		if cfg, ok := agg.registry[name].(Configurable); ok {
			// A section registered ahead of Enable wins over the role's
			// defaults.
			if _, registered := agg.cfgSections[name]; registered {
				continue
			}
			if err := cfg.RegisterConfig(agg); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrRoleConfigFailed, name, err)
			}
		}
	}

	// Feed registered sections before any role reads its config. Sections
	// fed on an earlier Enable call are fed again from the same sources,
	// which is idempotent.
	if err := loadSectionConfigs(agg, agg.feeders); err != nil {
		return err
	}

	staged := make(map[string]map[string]Export, len(pending))
	for _, name := range pending {
		role := agg.registry[name]
		if err := role.Init(agg); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRoleInitFailed, name, err)
		}
		items, err := collectExports(role)
		if err != nil {
			return err
		}
		staged[name] = items
	}

	for _, name := range pending {
		agg.enabled[name] = true
		agg.exports[name] = staged[name]
		agg.logger.Info("role enabled", "role", name, "exports", len(staged[name]))
		agg.notifyObservers(context.Background(), NewCloudEvent(
			EventTypeRoleEnabled, "aggregator",
			map[string]any{"role": name, "exports": len(staged[name])}, nil))
	}
	return nil
}

func collectExports(role Role) (map[string]Export, error) {
	items := make(map[string]Export)
	exporter, ok := role.(Exporter)
	if !ok {
		return items, nil
	}
	for _, exp := range exporter.Exports() {
		if exp.Name == "" || strings.Contains(exp.Name, ".") {
			return nil, fmt.Errorf("%w: %s.%q", ErrExportNameInvalid, role.Name(), exp.Name)
		}
		if _, dup := items[exp.Name]; dup {
			return nil, fmt.Errorf("%w: %s.%s", ErrExportCollision, role.Name(), exp.Name)
		}
		items[exp.Name] = exp
	}
	return items, nil
}

// Resolve looks up "<role>.<item>" in the enabled surface.
func (agg *StdAggregator) Resolve(qualified string) (any, error) {
	roleName, itemName, found := strings.Cut(qualified, ".")
	if !found || roleName == "" || itemName == "" {
		return nil, fmt.Errorf("%w: %q", ErrQualifiedName, qualified)
	}
	if !agg.enabled[roleName] {
		agg.logger.Debug("resolution miss", "name", qualified, "reason", "role not enabled")
		return nil, fmt.Errorf("%w: %s", ErrRoleNotEnabled, roleName)
	}
	exp, exists := agg.exports[roleName][itemName]
	if !exists {
		agg.logger.Debug("resolution miss", "name", qualified, "reason", "no such export")
		return nil, fmt.Errorf("%w: %s", ErrExportNotFound, qualified)
	}
	return exp.Value, nil
}

// Roles lists every known role with its enabled state, sorted by name.
func (agg *StdAggregator) Roles() []RoleInfo {
	infos := make([]RoleInfo, 0, len(agg.registry))
	for name, role := range agg.registry {
		info := RoleInfo{Name: name, Enabled: agg.enabled[name]}
		if v, ok := role.(Versioned); ok {
			info.Version = v.Version()
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Namespaces lists the namespaces of enabled roles in sorted order.
func (agg *StdAggregator) Namespaces() []string {
	names := make([]string, 0, len(agg.enabled))
	for name, on := range agg.enabled {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Exports returns the export list of an enabled role, sorted by item name.
func (agg *StdAggregator) Exports(role string) ([]Export, error) {
	if !agg.enabled[role] {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotEnabled, role)
	}
	items := agg.exports[role]
	out := make([]Export, 0, len(items))
	for _, exp := range items {
		out = append(out, exp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Freeze seals the surface. Freezing twice is a no-op.
func (agg *StdAggregator) Freeze() {
	if agg.frozen {
		return
	}
	agg.frozen = true
	agg.logger.Info("aggregator surface frozen", "namespaces", len(agg.Namespaces()))
}

// Logger returns the aggregator's logger.
func (agg *StdAggregator) Logger() Logger {
	return agg.logger
}
