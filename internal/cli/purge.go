package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"topogen/internal/domain"
	"topogen/internal/generator"
)

func newPurgeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete all previously generated entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cfg.Database.Driver == "file" {
				return fmt.Errorf("%w: the file driver keeps no data to purge", domain.ErrInvalidConfig)
			}

			persister, err := openPersister(cmd.Context(), cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer persister.Close()

			return generator.New(persister).Purge(cmd.Context())
		},
	}
}
