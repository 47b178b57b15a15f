package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tipjar/internal/crypto"
	"tipjar/internal/derive"
	"tipjar/internal/seal"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Print a fresh root key pair and encryption key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := derive.GenerateOwner()
			if err != nil {
				return err
			}
			rootPriv := owner.RootPrivateKey().Serialize()

			sealPriv, sealPub, err := seal.GenerateRecipient()
			if err != nil {
				return err
			}

			fmt.Printf("Derivation root (secp256k1)\n")
			fmt.Printf("  private: %s\n", crypto.Hex(rootPriv))
			fmt.Printf("  public:  %s\n", crypto.Hex(owner.Root().SerializeCompressed()))
			fmt.Printf("Encryption key (P-256)\n")
			fmt.Printf("  private: %s\n", crypto.Hex(sealPriv))
			fmt.Printf("  public:  %s\n", crypto.Hex(sealPub))

			crypto.Wipe(rootPriv)
			crypto.Wipe(sealPriv)
			return nil
		},
	}
}
