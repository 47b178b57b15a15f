package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tipjar/internal/app"
)

var (
	cfgPath string
	verbose bool
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "tipjar",
		Short: "Deterministic donation addresses and sealed contact data",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))

			if cfgPath == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfgPath = filepath.Join(dir, ".tipjar", "config.yaml")
			}

			cfg, err := app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			slog.Debug("config loaded", "path", cfgPath,
				"root_pub_set", cfg.RootPub != "", "owner_pub_set", cfg.OwnerPub != "")

			appCtx, err = app.Wire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.tipjar/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(generateCmd(), addressCmd(), deriveCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}
