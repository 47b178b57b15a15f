// Package commands defines the tipjar CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate   Print a fresh root key pair and encryption key pair
//   - address    Derive the funding address for an identifier
//   - derive     Derive the child private key for an identifier (owner)
//   - encrypt    Seal a message to a P-256 public key
//   - decrypt    Open a sealed blob with the matching private key
//
// # Implementation
//
// The root command loads the config file and builds the app context
// before any subcommand runs. The core packages stay pure; validation of
// user input (empty identifiers, malformed hex) happens here.
package commands
