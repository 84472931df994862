package ezstd

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger captures log calls for assertions.
type mockLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *mockLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, msg)
}

func (l *mockLogger) Info(msg string, args ...any)  { l.log(msg) }
func (l *mockLogger) Error(msg string, args ...any) { l.log(msg) }
func (l *mockLogger) Warn(msg string, args ...any)  { l.log(msg) }
func (l *mockLogger) Debug(msg string, args ...any) { l.log(msg) }

var errBoom = errors.New("boom")

// testRole is a configurable stub role.
type testRole struct {
	name      string
	version   string
	doc       string
	exports   []Export
	initErr   error
	inited    bool
	initCount int
}

func (r *testRole) Name() string { return r.name }

func (r *testRole) Init(agg Aggregator) error {
	if r.initErr != nil {
		return r.initErr
	}
	r.inited = true
	r.initCount++
	return nil
}

func (r *testRole) Exports() []Export { return r.exports }

func (r *testRole) Doc() string { return r.doc }

func (r *testRole) Version() string { return r.version }

func newTestAggregator(t *testing.T, roles ...Role) *StdAggregator {
	t.Helper()
	agg := NewStdAggregator(NewStdConfigProvider(&AggregatorConfig{}), &mockLogger{})
	for _, role := range roles {
		require.NoError(t, agg.RegisterRole(role))
	}
	return agg
}

func TestRegisterRoleValidation(t *testing.T) {
	agg := newTestAggregator(t)

	err := agg.RegisterRole(nil)
	assert.ErrorIs(t, err, ErrRoleNil)

	err = agg.RegisterRole(&testRole{name: ""})
	assert.ErrorIs(t, err, ErrRoleNameInvalid)

	err = agg.RegisterRole(&testRole{name: "a.b"})
	assert.ErrorIs(t, err, ErrRoleNameInvalid)
}

func TestRegisterRoleNamespaceCollision(t *testing.T) {
	agg := newTestAggregator(t, &testRole{name: "fs"})

	err := agg.RegisterRole(&testRole{name: "fs"})
	assert.ErrorIs(t, err, ErrRoleNameCollision)
	assert.True(t, IsConfigurationError(err))
}

func TestEnableUnknownRoleIsAtomic(t *testing.T) {
	known := &testRole{name: "fs"}
	agg := newTestAggregator(t, known)

	err := agg.Enable("fs", "bogus")
	require.ErrorIs(t, err, ErrUnknownRole)
	assert.True(t, IsConfigurationError(err))

	// The valid half of the request must not have been applied.
	assert.Empty(t, agg.Namespaces())
	assert.False(t, known.inited)
}

func TestEnableInitFailureIsAtomic(t *testing.T) {
	good := &testRole{name: "good"}
	bad := &testRole{name: "bad", initErr: errBoom}
	agg := newTestAggregator(t, bad, good)

	err := agg.Enable("bad", "good")
	require.ErrorIs(t, err, ErrRoleInitFailed)
	require.ErrorIs(t, err, errBoom)

	assert.Empty(t, agg.Namespaces())
}

// configFailRole fails during config registration rather than Init.
type configFailRole struct {
	testRole
	registerErr error
}

func (r *configFailRole) RegisterConfig(agg Aggregator) error { return r.registerErr }

func TestEnableRegisterConfigFailure(t *testing.T) {
	role := &configFailRole{testRole: testRole{name: "fs"}, registerErr: errBoom}
	agg := newTestAggregator(t, role)

	err := agg.Enable("fs")
	require.ErrorIs(t, err, ErrRoleConfigFailed)
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrRoleInitFailed)
	assert.True(t, IsConfigurationError(err))
	assert.Empty(t, agg.Namespaces())
}

func TestEnableIsIdempotent(t *testing.T) {
	role := &testRole{name: "fs", exports: []Export{{Name: "exists", Value: true}}}
	agg := newTestAggregator(t, role)

	require.NoError(t, agg.Enable("fs"))
	require.NoError(t, agg.Enable("fs"))

	assert.Equal(t, []string{"fs"}, agg.Namespaces())
	assert.Equal(t, 1, role.initCount)
}

func TestEnableDuplicateNamesInitOnce(t *testing.T) {
	// The same flag can arrive twice in one request, e.g. named on the
	// command line and listed in fed config.
	role := &testRole{name: "fs"}
	agg := newTestAggregator(t, role)

	require.NoError(t, agg.Enable("fs", "fs"))

	assert.Equal(t, 1, role.initCount)
	assert.Equal(t, []string{"fs"}, agg.Namespaces())
}

func TestEnableMonotonicity(t *testing.T) {
	// Namespaces exposed under a smaller role set are a subset of those
	// exposed under a larger one.
	small := newTestAggregator(t, &testRole{name: "fs"}, &testRole{name: "net"})
	large := newTestAggregator(t, &testRole{name: "fs"}, &testRole{name: "net"})

	require.NoError(t, small.Enable("fs"))
	require.NoError(t, large.Enable("fs", "net"))

	assert.Subset(t, large.Namespaces(), small.Namespaces())
}

func TestExportCollisionWithinRole(t *testing.T) {
	role := &testRole{name: "fs", exports: []Export{
		{Name: "readFile", Value: 1},
		{Name: "readFile", Value: 2},
	}}
	agg := newTestAggregator(t, role)

	err := agg.Enable("fs")
	assert.ErrorIs(t, err, ErrExportCollision)
	assert.Empty(t, agg.Namespaces())
}

func TestExportNameValidation(t *testing.T) {
	role := &testRole{name: "fs", exports: []Export{{Name: "read.file", Value: 1}}}
	agg := newTestAggregator(t, role)

	err := agg.Enable("fs")
	assert.ErrorIs(t, err, ErrExportNameInvalid)
}

func TestResolve(t *testing.T) {
	role := &testRole{name: "fs", exports: []Export{
		{Name: "exists", Description: "stub", Value: 42},
	}}
	agg := newTestAggregator(t, role)
	require.NoError(t, agg.Enable("fs"))

	value, err := agg.Resolve("fs.exists")
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestResolveDisabledRole(t *testing.T) {
	// The role is registered and would provide the item, but it was never
	// enabled.
	role := &testRole{name: "net", exports: []Export{{Name: "connect", Value: 1}}}
	agg := newTestAggregator(t, role)

	_, err := agg.Resolve("net.connect")
	assert.ErrorIs(t, err, ErrRoleNotEnabled)
	assert.True(t, IsNotFound(err))
}

func TestResolveMissingItem(t *testing.T) {
	role := &testRole{name: "fs", exports: []Export{{Name: "exists", Value: 1}}}
	agg := newTestAggregator(t, role)
	require.NoError(t, agg.Enable("fs"))

	_, err := agg.Resolve("fs.nonsense")
	assert.ErrorIs(t, err, ErrExportNotFound)
	assert.True(t, IsNotFound(err))
}

func TestResolveMalformedName(t *testing.T) {
	agg := newTestAggregator(t)

	for _, name := range []string{"", "fs", ".item", "fs.", "."} {
		_, err := agg.Resolve(name)
		assert.ErrorIs(t, err, ErrQualifiedName, "name %q", name)
		assert.True(t, IsNotFound(err))
	}
}

func TestFrozenSurfaceRejectsMutation(t *testing.T) {
	role := &testRole{name: "fs"}
	agg := newTestAggregator(t, role)
	require.NoError(t, agg.Enable("fs"))
	agg.Freeze()

	err := agg.RegisterRole(&testRole{name: "net"})
	assert.ErrorIs(t, err, ErrSurfaceFrozen)

	err = agg.Enable("fs")
	assert.ErrorIs(t, err, ErrSurfaceFrozen)

	// Resolution still works on the frozen surface.
	assert.Equal(t, []string{"fs"}, agg.Namespaces())
}

func TestRolesReportsEnabledState(t *testing.T) {
	agg := newTestAggregator(t,
		&testRole{name: "fs", version: "0.2.1"},
		&testRole{name: "net"},
	)
	require.NoError(t, agg.Enable("fs"))

	infos := agg.Roles()
	require.Len(t, infos, 2)
	assert.Equal(t, RoleInfo{Name: "fs", Version: "0.2.1", Enabled: true}, infos[0])
	assert.Equal(t, RoleInfo{Name: "net", Enabled: false}, infos[1])
}

func TestExportsRequiresEnabledRole(t *testing.T) {
	agg := newTestAggregator(t, &testRole{name: "fs"})

	_, err := agg.Exports("fs")
	assert.ErrorIs(t, err, ErrRoleNotEnabled)
}
