package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
)

// DomainSeparatorCmd prints the EIP-712 domain separator wallets sign
// permits against. It only reads the config.
func DomainSeparatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domain-separator",
		Short: "Prints the permit domain separator of the configured ledger",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(GetConfigPath())
			if err != nil {
				return err
			}

			p := cfg.Ledger.Params()
			fmt.Fprintln(cmd.OutOrStdout(), ledger.DomainSeparator(p.Name, p.ChainID, p.Address).Hex())
			return nil
		},
	}
}
