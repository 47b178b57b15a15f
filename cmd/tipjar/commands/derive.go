package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tipjar/internal/crypto"
	"tipjar/internal/derive"
)

// derive <identifier>: owner path. Derives the child private key, its
// public key and the address from the root private key.
func deriveCmd() *cobra.Command {
	var rootPriv string

	cmd := &cobra.Command{
		Use:   "derive <identifier>",
		Short: "Derive the child key pair for an identifier (requires the root private key)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if id == "" {
				return fmt.Errorf("identifier must not be empty")
			}

			raw, err := crypto.FromHex(rootPriv)
			if err != nil {
				return fmt.Errorf("--root-priv: %w", err)
			}
			owner, err := derive.NewOwner(raw)
			crypto.Wipe(raw)
			if err != nil {
				return err
			}

			child := owner.PrivateKey(id)
			childRaw := child.Serialize()

			fmt.Printf("identifier: %s\n", id)
			fmt.Printf("private:    %s\n", crypto.Hex(childRaw))
			fmt.Printf("public:     %s\n", crypto.Hex(child.PubKey().SerializeCompressed()))
			fmt.Printf("address:    %s\n", derive.AddressFromPublicKey(child.PubKey()).Hex())

			crypto.Wipe(childRaw)
			return nil
		},
	}
	cmd.Flags().StringVar(&rootPriv, "root-priv", "", "root private key hex")
	_ = cmd.MarkFlagRequired("root-priv")
	return cmd
}
