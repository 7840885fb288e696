package marimo

import (
	"fmt"

	"github.com/manzt/marimo/registry"
)

// Minting policy names accepted in configuration.
const (
	PolicySequential = "sequential"
	PolicyRandom     = "random"
)

// Config is a serialisable representation of the identity core
// configuration. It can be populated from JSON, YAML, environment variables,
// etc. The zero-value is useful – all nested fields inherit their package
// defaults.
type Config struct {
	Registry RegistryConfig `json:"registry" yaml:"registry"`
}

// RegistryConfig selects the identifier minting policy.
type RegistryConfig struct {
	Policy string `json:"policy" yaml:"policy"`
}

// DefaultConfig returns a Config populated with the package defaults:
// sequential minting.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Policy: PolicySequential,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Registry.Policy {
	case "", PolicySequential, PolicyRandom:
		return nil
	}
	return fmt.Errorf("registry.policy must be %q or %q, had: %q", PolicySequential, PolicyRandom, c.Registry.Policy)
}

// minter returns the minting strategy selected by the configuration.
func (c *Config) minter() registry.Minter {
	if c != nil && c.Registry.Policy == PolicyRandom {
		return registry.Random()
	}
	return registry.Sequential()
}
