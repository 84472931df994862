// Package feeders provides configuration feeders for the aggregator,
// reading capability flags and role settings from YAML, TOML and
// environment variable sources.
package feeders

import (
	"fmt"

	"github.com/golobby/config/v3/pkg/feeder"
	"gopkg.in/yaml.v3"
)

// YamlFeeder reads YAML files.
type YamlFeeder struct {
	feeder.Yaml
}

// NewYamlFeeder creates a YamlFeeder that reads from the specified file.
func NewYamlFeeder(filePath string) YamlFeeder {
	return YamlFeeder{feeder.Yaml{Path: filePath}}
}

// FeedKey reads the YAML file and feeds only the named top-level key into
// target. A missing key is not an error; the target keeps its defaults.
func (y YamlFeeder) FeedKey(key string, target interface{}) error {
	var allData map[string]interface{}
	if err := y.Feed(&allData); err != nil {
		return fmt.Errorf("failed to read YAML: %w", err)
	}

	value, exists := allData[key]
	if !exists {
		return nil
	}

	// Remarshal the subtree so yaml handles the type conversions.
	valueBytes, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML key %s: %w", key, err)
	}
	if err = yaml.Unmarshal(valueBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal YAML key %s: %w", key, err)
	}
	return nil
}
