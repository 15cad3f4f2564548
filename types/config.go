package types

import (
	"fmt"
	"strings"
	"time"
)

// IDPolicy selects how asset and sub-asset sequence numbers are chosen
type IDPolicy string

const (
	// IDPolicyMonotonic never hands out a sequence number twice for the same
	// prefix, even after deletions.
	IDPolicyMonotonic IDPolicy = "monotonic"

	// IDPolicyLiveCount counts the live records sharing the prefix and adds
	// one. Deleting a record can make the next id collide with a live one.
	IDPolicyLiveCount IDPolicy = "live-count"
)

// String returns the policy name
func (p IDPolicy) String() string {
	return string(p)
}

// ParseIDPolicy converts a policy name, as found in config files, to an IDPolicy
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch IDPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case IDPolicyMonotonic, "":
		return IDPolicyMonotonic, nil
	case IDPolicyLiveCount:
		return IDPolicyLiveCount, nil
	default:
		return "", fmt.Errorf("unknown id policy %q (want %q or %q)", s, IDPolicyMonotonic, IDPolicyLiveCount)
	}
}

// Config defines the tunables of an asset store
type Config struct {
	// DefaultCategories are created when the store is built and SeedCategories is set
	DefaultCategories []string `yaml:"default_categories" mapstructure:"default_categories"`

	// SeedCategories controls the implicit default-category initialization
	SeedCategories bool `yaml:"seed_categories" mapstructure:"seed_categories"`

	// HistoryCapacity bounds the recently-accessed stack
	HistoryCapacity int `yaml:"history_capacity" mapstructure:"history_capacity"`

	// DefaultValue is the CurrentValue given to new valuation records
	DefaultValue int `yaml:"default_value" mapstructure:"default_value"`

	// IDPolicy is either "monotonic" or "live-count"
	IDPolicy IDPolicy `yaml:"id_policy" mapstructure:"id_policy"`

	// TimeFormat is the Go layout used for history access times
	TimeFormat string `yaml:"time_format" mapstructure:"time_format"`
}

// Defaults used by DefaultConfig
const (
	DefaultHistoryCapacity = 15
	DefaultAssetValue      = 1000
	DefaultTimeFormat      = "02/01/2006 15:04"
)

// DefaultConfig returns the configuration the store uses when none is given
func DefaultConfig() Config {
	return Config{
		DefaultCategories: []string{"Kost", "Gedung", "Rumah", "Emas", "Kendaraan", "Elektronik"},
		SeedCategories:    true,
		HistoryCapacity:   DefaultHistoryCapacity,
		DefaultValue:      DefaultAssetValue,
		IDPolicy:          IDPolicyMonotonic,
		TimeFormat:        DefaultTimeFormat,
	}
}

// Validate checks the configuration for consistency
func (c Config) Validate() error {
	if c.HistoryCapacity <= 0 {
		return fmt.Errorf("history_capacity must be positive, got %d", c.HistoryCapacity)
	}
	if c.DefaultValue < 0 {
		return fmt.Errorf("default_value cannot be negative, got %d", c.DefaultValue)
	}
	if _, err := ParseIDPolicy(string(c.IDPolicy)); err != nil {
		return err
	}
	if strings.TrimSpace(c.TimeFormat) == "" {
		return fmt.Errorf("time_format cannot be empty")
	}

	seen := make(map[string]bool, len(c.DefaultCategories))
	for _, name := range c.DefaultCategories {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("default_categories: names cannot be empty")
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return fmt.Errorf("default_categories: duplicate category %q", trimmed)
		}
		seen[key] = true
	}
	return nil
}

// FormatTime renders t with the configured layout
func (c Config) FormatTime(t time.Time) string {
	layout := c.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return t.Format(layout)
}
