package app

import (
	"fmt"

	"tipjar/internal/crypto"
	"tipjar/internal/derive"
)

// App bundles the constructed components for the CLI.
type App struct {
	// Deriver is nil when no root_pub is configured.
	Deriver *derive.Deriver
	// OwnerPub is the decoded encryption public key, nil when not
	// configured. Validated as a curve point on first use by seal.Encrypt.
	OwnerPub []byte
}

// Wire constructs the dependency graph from cfg.
func Wire(cfg Config) (*App, error) {
	var a App

	if cfg.RootPub != "" {
		raw, err := crypto.FromHex(cfg.RootPub)
		if err != nil {
			return nil, fmt.Errorf("root_pub: %w", err)
		}
		d, err := derive.NewDeriver(raw)
		if err != nil {
			return nil, fmt.Errorf("root_pub: %w", err)
		}
		a.Deriver = d
	}

	if cfg.OwnerPub != "" {
		raw, err := crypto.FromHex(cfg.OwnerPub)
		if err != nil {
			return nil, fmt.Errorf("owner_pub: %w", err)
		}
		a.OwnerPub = raw
	}

	return &a, nil
}
