// Package app loads configuration and builds the dependency graph for
// the CLI. The two root public keys (derivation and encryption) are
// explicit configuration values, not package-level constants, so multiple
// roots can coexist in tests.
package app
