// Package strs provides the "strings" role: an immutable String vocabulary
// type with explicit native-string interop, a byte cursor, and a handful of
// string helpers exported through the aggregator.
package strs

import (
	"strings"

	"github.com/ezstd/ezstd"
)

// RoleName is the name of this role, used as its capability flag and
// namespace.
const RoleName = "strings"

// RoleVersion is the version of the strings role. Role versions move
// independently of the umbrella module.
const RoleVersion = "0.3.0"

// StringsRole implements the strings capability.
type StringsRole struct {
	name   string
	logger ezstd.Logger
}

// NewRole creates a new instance of the strings role.
func NewRole() ezstd.Role {
	return &StringsRole{
		name: RoleName,
	}
}

// Name returns the name of the role.
func (r *StringsRole) Name() string {
	return r.name
}

// Version returns the role's version.
func (r *StringsRole) Version() string {
	return RoleVersion
}

// Init initializes the role.
func (r *StringsRole) Init(agg ezstd.Aggregator) error {
	r.logger = agg.Logger()
	r.logger.Debug("strings role initialized")
	return nil
}

// Doc returns the role documentation inlined into the generated reference.
func (r *StringsRole) Doc() string {
	return `String helpers and the immutable ` + "`String`" + ` vocabulary type.
All operations return owned values; convert to and from native strings with
` + "`wrap` / `unwrap`" + `.`
}

// Exports declares the items this role exposes through the aggregator.
func (r *StringsRole) Exports() []ezstd.Export {
	return []ezstd.Export{
		{Name: "wrap", Description: "Convert a native string into a String", Value: Wrap},
		{Name: "unwrap", Description: "Convert a String back into a native string", Value: String.Unwrap},
		{Name: "upper", Description: "Uppercase a string", Value: strings.ToUpper},
		{Name: "lower", Description: "Lowercase a string", Value: strings.ToLower},
		{Name: "trimStart", Description: "Remove leading whitespace", Value: TrimStart},
		{Name: "trimEnd", Description: "Remove trailing whitespace", Value: TrimEnd},
		{Name: "split", Description: "Split a string around a separator", Value: Split},
		{Name: "join", Description: "Join parts with a separator", Value: Join},
		{Name: "lstrip", Description: "Remove leading whitespace (legacy name)", Value: String.Lstrip, Deprecated: true},
	}
}

// TrimStart removes leading whitespace from s.
func TrimStart(s string) string {
	return Wrap(s).TrimStart().Unwrap()
}

// TrimEnd removes trailing whitespace from s.
func TrimEnd(s string) string {
	return Wrap(s).TrimEnd().Unwrap()
}

// Split splits s around sep, returning an owned slice.
func Split(s, sep string) []string {
	return strings.Split(s, sep)
}

// Join concatenates parts with sep between them.
func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
