// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the "datalint config" command, where settings are
// addressed by dotted keys (e.g., "output.colour").
//
// Design: Pointers are used for optional booleans so we can distinguish
// between "not set" (nil) and "explicitly set to false". Defaults are only
// applied when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/datalint/internal/format"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"data.dir", "output.colour", "log.enabled"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "data.dir":
		return c.Data.Dir, nil
	case "output.colour":
		return c.ColourMode(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data.dir":
		c.Data.Dir = value
	case "output.colour":
		v := strings.ToLower(value)
		if !format.ValidColourMode(v) {
			return fmt.Errorf("%w: output.colour must be one of %s", ErrInvalidValue, strings.Join(format.ColourModes, ", "))
		}
		c.Output.Colour = v
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"data.dir":      c.Data.Dir,
		"output.colour": c.ColourMode(),
		"log.enabled":   strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "data.dir":
		return c.Data.Dir != ""
	case "output.colour":
		return c.Output.Colour != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
