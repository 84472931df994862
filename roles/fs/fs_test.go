package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezstd/ezstd"
)

type mockLogger struct{}

func (mockLogger) Info(msg string, args ...any)  {}
func (mockLogger) Error(msg string, args ...any) {}
func (mockLogger) Warn(msg string, args ...any)  {}
func (mockLogger) Debug(msg string, args ...any) {}

// newRoleForTest enables the role through a real aggregator so the config
// defaults flow the same way they do in production.
func newRoleForTest(t *testing.T, mutate func(*FSConfig)) *FSRole {
	t.Helper()
	role := NewRole().(*FSRole)
	agg := ezstd.NewStdAggregator(ezstd.NewStdConfigProvider(&ezstd.AggregatorConfig{}), mockLogger{})
	require.NoError(t, agg.RegisterRole(role))
	if mutate != nil {
		require.NoError(t, role.RegisterConfig(agg))
		cfg, err := agg.GetConfigSection(RoleName)
		require.NoError(t, err)
		mutate(cfg.GetConfig().(*FSConfig))
	}
	require.NoError(t, agg.Enable(RoleName))
	return role
}

func TestReadFileReturnsOwnedBytes(t *testing.T) {
	role := newRoleForTest(t, nil)
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	data, err := role.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	s, err := role.ReadString(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", s)
}

func TestReadFileHonorsCap(t *testing.T) {
	role := newRoleForTest(t, func(c *FSConfig) { c.MaxReadBytes = 4 })
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("too large"), 0o644))

	_, err := role.ReadFile(path)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadFileMissing(t *testing.T) {
	role := newRoleForTest(t, nil)
	_, err := role.ReadFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWriteAndAppend(t *testing.T) {
	role := newRoleForTest(t, func(c *FSConfig) { c.WriteMode = "0600" })
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, role.WriteFile(path, []byte("one\n")))
	require.NoError(t, role.AppendFile(path, []byte("two\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestInvalidWriteModeFailsInit(t *testing.T) {
	role := NewRole().(*FSRole)
	agg := ezstd.NewStdAggregator(ezstd.NewStdConfigProvider(&ezstd.AggregatorConfig{}), mockLogger{})
	require.NoError(t, agg.RegisterRole(role))
	require.NoError(t, role.RegisterConfig(agg))
	cfg, err := agg.GetConfigSection(RoleName)
	require.NoError(t, err)
	cfg.GetConfig().(*FSConfig).WriteMode = "banana"

	err = agg.Enable(RoleName)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWriteMode)
	assert.True(t, ezstd.IsConfigurationError(err))
}

func TestExistsAndGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.log"), nil, 0o644))

	assert.True(t, Exists(filepath.Join(dir, "a.txt")))
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing")))

	matches, err := Glob(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRoleExportsResolve(t *testing.T) {
	role := NewRole().(*FSRole)
	agg := ezstd.NewStdAggregator(ezstd.NewStdConfigProvider(&ezstd.AggregatorConfig{}), mockLogger{})
	require.NoError(t, agg.RegisterRole(role))
	require.NoError(t, agg.Enable(RoleName))

	item, err := agg.Resolve("fs.readFile")
	require.NoError(t, err)
	_, ok := item.(func(string) ([]byte, error))
	assert.True(t, ok, "fs.readFile resolved to %T", item)

	item, err = agg.Resolve("fs.exists")
	require.NoError(t, err)
	exists, ok := item.(func(string) bool)
	require.True(t, ok)
	assert.False(t, exists(filepath.Join(t.TempDir(), "missing")))
}
