package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tipjar/internal/crypto"
	"tipjar/internal/seal"
)

// encrypt [pubkey-hex] <message>: seal a message to a P-256 public key.
// With one argument the configured owner_pub is used.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [pubkey-hex] <message>",
		Short: "Seal a message to a P-256 public key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub []byte
			var msg string

			if len(args) == 2 {
				raw, err := crypto.FromHex(args[0])
				if err != nil {
					return fmt.Errorf("public key: %w", err)
				}
				pub, msg = raw, args[1]
			} else {
				if appCtx.OwnerPub == nil {
					return fmt.Errorf("no encryption key: set owner_pub in the config or pass one")
				}
				pub, msg = appCtx.OwnerPub, args[0]
			}

			blob, err := seal.Encrypt(pub, []byte(msg))
			if err != nil {
				return err
			}
			fmt.Println(crypto.Hex(blob))
			return nil
		},
	}
}
