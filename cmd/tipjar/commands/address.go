package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tipjar/internal/crypto"
	"tipjar/internal/derive"
)

// address <identifier>: derive the funding address for an identifier from
// the configured root public key. No secret material is involved.
func addressCmd() *cobra.Command {
	var rootPub string

	cmd := &cobra.Command{
		Use:   "address <identifier>",
		Short: "Derive the funding address for an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if id == "" {
				return fmt.Errorf("identifier must not be empty")
			}

			d := appCtx.Deriver
			if rootPub != "" {
				raw, err := crypto.FromHex(rootPub)
				if err != nil {
					return fmt.Errorf("--root: %w", err)
				}
				if d, err = derive.NewDeriver(raw); err != nil {
					return fmt.Errorf("--root: %w", err)
				}
			}
			if d == nil {
				return fmt.Errorf("no root public key: set root_pub in the config or pass --root")
			}

			addr := d.Address(id)
			slog.Debug("derived address", "identifier", id, "address", addr)
			fmt.Println(addr.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&rootPub, "root", "", "root public key hex (overrides config)")
	return cmd
}
