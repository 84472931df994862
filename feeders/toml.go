package feeders

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/golobby/config/v3/pkg/feeder"
)

// TomlFeeder reads TOML files.
type TomlFeeder struct {
	feeder.Toml
}

// NewTomlFeeder creates a TomlFeeder that reads from the specified file.
func NewTomlFeeder(filePath string) TomlFeeder {
	return TomlFeeder{feeder.Toml{Path: filePath}}
}

// FeedKey reads the TOML file and feeds only the named top-level key into
// target. A missing key is not an error; the target keeps its defaults.
func (t TomlFeeder) FeedKey(key string, target interface{}) error {
	var allData map[string]interface{}
	if err := t.Feed(&allData); err != nil {
		return fmt.Errorf("failed to read TOML: %w", err)
	}

	value, exists := allData[key]
	if !exists {
		return nil
	}

	valueBytes, err := toml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML key %s: %w", key, err)
	}
	if err = toml.Unmarshal(valueBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal TOML key %s: %w", key, err)
	}
	return nil
}
