package ezstd

import (
	"errors"
)

// Aggregator errors
var (
	// Configuration errors. These surface while the aggregator is being
	// composed and are never recoverable at resolution time.
	ErrUnknownRole       = errors.New("unknown role")
	ErrRoleNameCollision = errors.New("role name already registered")
	ErrRoleNameInvalid   = errors.New("role name must be non-empty and must not contain '.'")
	ErrExportCollision   = errors.New("export name already present in role namespace")
	ErrExportNameInvalid = errors.New("export name must be non-empty and must not contain '.'")
	ErrRoleInitFailed    = errors.New("role initialization failed")
	ErrRoleConfigFailed  = errors.New("role config registration failed")
	ErrSurfaceFrozen     = errors.New("aggregator surface is frozen")
	ErrLoggerNotSet      = errors.New("logger not set")
	ErrRoleNil           = errors.New("role is nil")

	// Resolution errors. Recoverable by the caller of Resolve.
	ErrRoleNotEnabled = errors.New("role not enabled")
	ErrExportNotFound = errors.New("export not found")
	ErrQualifiedName  = errors.New("qualified name must be of the form <role>.<item>")

	// Config errors
	ErrConfigSectionNotFound = errors.New("config section not found")
	ErrConfigProviderNil     = errors.New("config provider is nil")
	ErrConfigFeederError     = errors.New("config feeder error")
)

// configurationErrors is the closed set of errors that indicate the
// aggregator was composed incorrectly. They appear before the surface
// freezes; once Build succeeds, none of them can occur.
var configurationErrors = []error{
	ErrUnknownRole,
	ErrRoleNameCollision,
	ErrRoleNameInvalid,
	ErrExportCollision,
	ErrExportNameInvalid,
	ErrRoleInitFailed,
	ErrRoleConfigFailed,
	ErrSurfaceFrozen,
	ErrLoggerNotSet,
	ErrRoleNil,
	ErrConfigProviderNil,
	ErrConfigFeederError,
}

// notFoundErrors is the closed set of errors Resolve returns for lookups
// that miss. Callers may recover by falling back or reporting.
var notFoundErrors = []error{
	ErrRoleNotEnabled,
	ErrExportNotFound,
	ErrQualifiedName,
}

// IsConfigurationError reports whether err stems from static
// misconfiguration of the aggregator (unknown role, name collision, a role
// that failed to initialize). Retrying never helps.
func IsConfigurationError(err error) bool {
	for _, e := range configurationErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err indicates a resolution miss: the role is
// not enabled or the item does not exist in the role's surface.
func IsNotFound(err error) bool {
	for _, e := range notFoundErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
