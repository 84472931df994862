// Package ezstd provides a capability aggregator for ergonomics helper
// libraries. It composes independent "role" packages (string helpers,
// filesystem helpers, process helpers, and so on) behind named opt-in
// capability flags, exposing each enabled role's surface under exactly one
// namespace and producing a generated reference document for the enabled
// surface.
//
// Composition is static: the set of enabled roles is decided at configuration
// time, before any lookup happens, and never changes afterwards. Consumers
// who enable only the "fs" capability never touch the process or networking
// helpers.
//
// Basic usage:
//
//	agg, err := ezstd.NewAggregator(
//		ezstd.WithLogger(logger),
//		ezstd.WithRoles(fs.NewRole(), strs.NewRole()),
//		ezstd.WithCapabilities("fs", "strings"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	item, err := agg.Resolve("fs.readFile")
//
// The exposed surface is NOT guaranteed stable across releases. Helper names
// are curated for ergonomics, and curation means renaming and removal; expect
// frequent major version bumps and treat every exported name as provisional.
package ezstd

// Role represents an aggregatable capability unit. Each role implements one
// isolated concern and is gated behind a capability flag equal to its name.
//
// A role's name doubles as its namespace: once enabled, every item the role
// exports is reachable at "<name>.<item>" and nowhere else.
type Role interface {
	// Name returns the unique identifier for this role. It is used as the
	// capability flag and as the namespace prefix for every exported item,
	// so it must be unique within an aggregator and must not contain a dot.
	//
	// Example: "fs", "strings", "proc"
	Name() string

	// Init prepares the role for use. It is called exactly once, while the
	// role is being enabled and before the aggregator's surface freezes.
	// Configuration registered via Configurable is available at this point.
	//
	// Init must not spawn background work; roles whose helpers need
	// goroutines (watchers, schedulers) start them lazily when the helper
	// is invoked.
	Init(agg Aggregator) error
}

// Configurable is implemented by roles that accept configuration. The
// aggregator calls RegisterConfig before Init, giving the role a chance to
// register a config section with defaults that feeders may then override.
type Configurable interface {
	// RegisterConfig registers the role's configuration section with the
	// aggregator, typically via:
	//
	//	agg.RegisterConfigSection(r.Name(), ezstd.NewStdConfigProvider(&Config{...}))
	RegisterConfig(agg Aggregator) error
}

// Exporter is implemented by roles that expose named items through the
// aggregator. Exports are collected once, immediately after Init, and become
// the role's entire resolvable surface.
type Exporter interface {
	// Exports returns the items this role exposes. Item names must be
	// unique within the role and must not contain a dot.
	Exports() []Export
}

// Documented is implemented by roles that carry a documentation blob. The
// blob is inlined into the aggregator's generated reference under the role's
// section when the role is enabled.
type Documented interface {
	// Doc returns the role's documentation in markdown.
	Doc() string
}

// Versioned is implemented by roles that report their own version. Roles are
// versioned independently of the aggregator; the version is surfaced through
// RoleInfo and the generated reference.
type Versioned interface {
	Version() string
}

// Export describes one named item a role exposes. Value holds the concrete
// item: for operations this is the function itself, for constants and
// vocabulary types it is the value or constructor.
type Export struct {
	// Name is the item's identifier within the role's namespace.
	Name string

	// Description is a one-line summary used in the generated reference.
	Description string

	// Value is the owned item returned by Resolve. Resolve never hands out
	// views into role internals; whatever is stored here must be safe to
	// give away.
	Value any

	// Deprecated marks compatibility shims ported from the reference
	// scripting ecosystem. Deprecated exports resolve normally but are
	// omitted from the generated reference.
	Deprecated bool
}

// RoleInfo describes a registered role. Roles are versioned independently of
// the aggregator; Version is informational metadata, not a compatibility
// promise.
type RoleInfo struct {
	Name    string
	Version string
	Enabled bool
}

// RoleRegistry represents the set of roles known to an aggregator, keyed by
// role name. Registration makes a role eligible for enabling; it does not
// enable it.
type RoleRegistry map[string]Role
