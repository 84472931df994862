package feeders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTomlFeederFeedKey(t *testing.T) {
	path := writeTempFile(t, "cfg.toml", `
[aggregator]
enabled = ["fs", "net"]

[fs]
max_read_bytes = 2048
write_mode = "0640"
`)
	feeder := NewTomlFeeder(path)

	var flags flagsSection
	require.NoError(t, feeder.FeedKey("aggregator", &flags))
	assert.Equal(t, []string{"fs", "net"}, flags.Enabled)

	var fsCfg fsSection
	require.NoError(t, feeder.FeedKey("fs", &fsCfg))
	assert.Equal(t, int64(2048), fsCfg.MaxReadBytes)
	assert.Equal(t, "0640", fsCfg.WriteMode)
}

func TestTomlFeederFeedKeyMissingKeyKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "cfg.toml", "[aggregator]\nenabled = [\"fs\"]\n")

	fsCfg := fsSection{WriteMode: "0644"}
	require.NoError(t, NewTomlFeeder(path).FeedKey("net", &fsCfg))
	assert.Equal(t, "0644", fsCfg.WriteMode)
}
