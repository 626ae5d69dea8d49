package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/kimberlabs/staking-ledger/internal/observability/tracing"
	"github.com/kimberlabs/staking-ledger/pkg"
)

func FundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Credits custody balance of the staked or reward token",
		Args:  cobra.ExactArgs(0),
		RunE:  fund,
	}

	cmd.Flags().String("token", "", "Token to credit: base or reward")
	cmd.Flags().String("to", "", "Holder address")
	cmd.Flags().String("amount", "", "Amount in base units")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func fund(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	tokenFlag, _ := cmd.Flags().GetString("token")
	toFlag, _ := cmd.Flags().GetString("to")
	amountFlag, _ := cmd.Flags().GetString("amount")

	to, err := pkg.ParseAddress(toFlag)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}
	amount, err := uint256.FromDecimal(amountFlag)
	if err != nil {
		return fmt.Errorf("invalid --amount: %w", err)
	}

	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close(ctx)

	var token common.Address
	params := d.cfg.Ledger.Params()
	switch tokenFlag {
	case "base":
		token = params.StakedToken
	case "reward":
		token = params.RewardToken
	default:
		return fmt.Errorf("unknown --token %q, expected base or reward", tokenFlag)
	}

	if err := d.service.Fund(ctx, token, to, *amount); err != nil {
		return err
	}

	balance, terr := d.service.TokenBalance(ctx, token, to)
	if terr != nil {
		return terr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s balance of %s: %s\n", tokenFlag, to.Hex(), balance.Dec())
	return nil
}
