package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/observability/tracing"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Brings the stored ledger to a revision",
		Args:  cobra.ExactArgs(0),
		RunE:  migrate,
	}

	cmd.Flags().Uint64("revision", ledger.LatestRevision, "Target revision")

	return cmd
}

func migrate(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	revision, err := cmd.Flags().GetUint64("revision")
	if err != nil {
		return err
	}

	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close(ctx)

	if err := d.service.Bootstrap(ctx); err != nil {
		return err
	}
	if err := d.service.Migrate(ctx, revision); err != nil {
		return err
	}

	log.Ctx(ctx).Info().Uint64("revision", revision).Msg("Ledger migrated")
	return nil
}
