// Package netx provides the "net" role: an HTTP GET that returns an owned,
// size-capped body, a context-aware dial, and a one-call static file server
// built on a chi router.
package netx

import (
	"github.com/ezstd/ezstd"
)

// RoleName is the name of this role, used as its capability flag and
// namespace.
const RoleName = "net"

// RoleVersion is the version of the net role.
const RoleVersion = "0.1.2"

// NetRole implements the net capability.
type NetRole struct {
	name   string
	config *NetConfig
	logger ezstd.Logger
}

// NewRole creates a new instance of the net role.
func NewRole() ezstd.Role {
	return &NetRole{
		name: RoleName,
	}
}

// Name returns the name of the role.
func (r *NetRole) Name() string {
	return r.name
}

// Version returns the role's version.
func (r *NetRole) Version() string {
	return RoleVersion
}

// RegisterConfig registers the role's configuration with defaults.
func (r *NetRole) RegisterConfig(agg ezstd.Aggregator) error {
	defaultConfig := &NetConfig{
		TimeoutSeconds: 30,
		MaxBodyBytes:   10 << 20,
		UserAgent:      "ezstd-net",
	}
	agg.RegisterConfigSection(r.Name(), ezstd.NewStdConfigProvider(defaultConfig))
	return nil
}

// Init initializes the role from its registered configuration.
func (r *NetRole) Init(agg ezstd.Aggregator) error {
	cfg, err := agg.GetConfigSection(r.name)
	if err != nil {
		return err
	}
	r.config = cfg.GetConfig().(*NetConfig)
	r.logger = agg.Logger()
	r.logger.Debug("net role initialized", "timeoutSeconds", r.config.TimeoutSeconds)
	return nil
}

// Doc returns the role documentation inlined into the generated reference.
func (r *NetRole) Doc() string {
	return `Networking helpers. ` + "`get`" + ` fetches a URL into an owned byte slice capped
by ` + "`max_body_bytes`" + `; ` + "`serveDir`" + ` serves a directory over HTTP with one call.`
}

// Exports declares the items this role exposes through the aggregator.
func (r *NetRole) Exports() []ezstd.Export {
	return []ezstd.Export{
		{Name: "get", Description: "Fetch a URL body into an owned byte slice", Value: r.Get},
		{Name: "connect", Description: "Open a TCP connection with the configured timeout", Value: r.Connect},
		{Name: "serveDir", Description: "Serve a directory of static files over HTTP", Value: r.ServeDir},
	}
}
