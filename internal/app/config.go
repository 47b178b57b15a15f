package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the fixed public keys the CLI operates against. Both are
// hex strings; either may be empty, disabling the commands that need it.
type Config struct {
	// RootPub is the secp256k1 root public key addresses derive from,
	// compressed or uncompressed.
	RootPub string `yaml:"root_pub"`
	// OwnerPub is the P-256 public key contact data is encrypted to,
	// uncompressed.
	OwnerPub string `yaml:"owner_pub"`
}

// LoadConfig reads a yaml config file. A missing file is not an error and
// yields the zero Config, so the CLI works with flags alone.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
