package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tipjar/internal/crypto"
	"tipjar/internal/seal"
)

// decrypt <privkey-hex> <blob-hex>: open a sealed blob.
func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <privkey-hex> <blob-hex>",
		Short: "Open a sealed blob with the matching private key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := crypto.FromHex(args[0])
			if err != nil {
				return fmt.Errorf("private key: %w", err)
			}
			defer crypto.Wipe(priv)

			blob, err := crypto.FromHex(args[1])
			if err != nil {
				return fmt.Errorf("blob: %w", err)
			}

			plaintext, err := seal.Decrypt(priv, blob)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", plaintext)
			return nil
		},
	}
}
