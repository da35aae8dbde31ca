package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"topogen/internal/config"
	"topogen/internal/logger"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the topogen config file",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to a new config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				target = config.DefaultConfigPath()
			}
			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", target)
			}

			if err := config.DefaultConfig().Save(target); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			logger.Info("wrote default config", "path", target)
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "where to write the config (default: $XDG_CONFIG_HOME/topogen/config.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
