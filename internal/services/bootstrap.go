package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/types"
)

// Bootstrap loads the persisted ledger into memory. An empty store is
// initialized at the first revision.
func (s *Service) Bootstrap(ctx context.Context) error {
	log := log.Ctx(ctx)
	params := s.cfg.Ledger.Params()

	meta, err := s.db.GetLedgerMeta(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return fmt.Errorf("failed to get ledger meta: %w", err)
		}

		s.mu.Lock()
		s.ledger = ledger.New(params, nil)
		s.sequence = 0
		s.mu.Unlock()

		log.Info().Msg("Ledger store is empty, initializing first revision")
		if err := s.Migrate(ctx, 1); err != nil {
			return fmt.Errorf("failed to initialize ledger: %w", err)
		}
		return nil
	}

	state, err := s.loadState(ctx, params, meta)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = ledger.New(params, state)
	s.sequence = meta.Sequence

	log.Info().
		Uint64("revision", state.Revision).
		Uint64("sequence", meta.Sequence).
		Int("accounts", len(state.Accounts)).
		Str("total_supply", state.TotalSupply.Dec()).
		Msg("Ledger loaded")
	return nil
}

func (s *Service) loadState(ctx context.Context, params ledger.Params, meta *model.LedgerMetaDocument) (*ledger.State, error) {
	state := ledger.NewState()
	state.Revision = meta.Revision

	totalSupply, err := meta.ParseTotalSupply()
	if err != nil {
		return nil, err
	}
	state.TotalSupply = totalSupply

	assetDoc, err := s.db.GetAsset(ctx, params.Address.Hex())
	switch {
	case err == nil:
		asset, err := assetDoc.ToAssetData()
		if err != nil {
			return nil, err
		}
		state.Asset = asset
	case !db.IsNotFoundError(err):
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	accounts, err := s.db.FindAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	for _, doc := range accounts {
		addr, acc, err := doc.ToAccount()
		if err != nil {
			return nil, err
		}
		state.Accounts[addr] = acc
	}

	allowances, err := s.db.FindAllowances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find allowances: %w", err)
	}
	for _, doc := range allowances {
		a, err := doc.ToAllowance()
		if err != nil {
			return nil, err
		}
		state.SetAllowance(a.Owner, a.Spender, a.Amount)
	}

	return state, nil
}

// Migrate brings the ledger data to revision.
func (s *Service) Migrate(ctx context.Context, revision uint64) *types.Error {
	_, err := s.execute(ctx, types.OperationInitialize, func(tx *ledger.Tx) error {
		return tx.Initialize(revision)
	})
	return err
}
