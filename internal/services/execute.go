package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/kimberlabs/staking-ledger/internal/clients/tokenclient"
	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/observability/metrics"
	"github.com/kimberlabs/staking-ledger/internal/queue"
	"github.com/kimberlabs/staking-ledger/internal/types"
)

var errNotBootstrapped = errors.New("ledger is not bootstrapped")

// execute runs op in a ledger transaction and persists the result. The
// in-memory ledger only changes after the db transaction committed. Events
// are published after that, once the ledger lock is released.
func (s *Service) execute(
	ctx context.Context, operation types.Operation, op func(tx *ledger.Tx) error,
) (cs *ledger.ChangeSet, typedErr *types.Error) {
	startTime := time.Now()
	defer func() {
		metrics.RecordLedgerOperation(time.Since(startTime), operation.String(), typedErr != nil)
	}()

	var sequence uint64
	cs, sequence, typedErr = s.apply(ctx, operation, op)
	if typedErr != nil {
		return nil, typedErr
	}

	s.publish(ctx, operation, sequence, cs)
	return cs, nil
}

// apply is the serialized part of execute.
func (s *Service) apply(
	ctx context.Context, operation types.Operation, op func(tx *ledger.Tx) error,
) (*ledger.ChangeSet, uint64, *types.Error) {
	log := log.Ctx(ctx).With().Str("operation", operation.String()).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger == nil {
		return nil, 0, types.NewInternalServiceError(errNotBootstrapped)
	}

	tx := s.ledger.Begin(s.now())
	if err := op(tx); err != nil {
		log.Debug().Err(err).Msg("Ledger operation rejected")
		return nil, 0, types.NewLedgerError(err)
	}

	cs := tx.ChangeSet()
	sequence := s.sequence + 1

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		return s.persist(ctx, operation, sequence, cs)
	})
	if err != nil {
		switch {
		case tokenclient.IsInsufficientFundsError(err):
			return nil, 0, types.NewError(http.StatusBadRequest, types.InsufficientFunds, err)
		case db.IsSequenceConflictError(err):
			log.Error().Err(err).Uint64("sequence", sequence).Msg("Ledger was modified by another writer")
			return nil, 0, types.NewError(http.StatusConflict, types.Conflict, err)
		default:
			log.Error().Err(err).Msg("Failed to persist ledger changes")
			return nil, 0, types.NewInternalServiceError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		// the db already holds the change set, the process has to reload it
		log.Error().Err(err).Msg("Failed to commit persisted ledger changes")
		return nil, 0, types.NewInternalServiceError(err)
	}
	s.sequence = sequence

	log.Debug().
		Uint64("sequence", sequence).
		Int("events", len(cs.Events)).
		Msg("Ledger operation committed")
	return cs, sequence, nil
}

func (s *Service) persist(ctx context.Context, operation types.Operation, sequence uint64, cs *ledger.ChangeSet) error {
	for _, t := range cs.Transfers {
		if err := s.token.Transfer(ctx, t.Token, t.From, t.To, t.Amount); err != nil {
			return fmt.Errorf("failed to transfer %s of %s: %w", t.Amount.Dec(), t.Token.Hex(), err)
		}
	}

	// claims the sequence, a concurrent writer fails here before anything else is written
	err := s.db.SaveLedgerMeta(ctx, s.sequence, &model.LedgerMetaDocument{
		ID:          model.LedgerMetaID,
		Revision:    cs.Revision,
		TotalSupply: cs.TotalSupply.Dec(),
		Sequence:    sequence,
		LastUpdated: cs.Timestamp,
	})
	if err != nil {
		return err
	}

	if cs.Asset != nil {
		if err := s.db.UpsertAsset(ctx, model.NewAssetDocument(s.cfg.Ledger.Params().Address, *cs.Asset)); err != nil {
			return fmt.Errorf("failed to upsert asset: %w", err)
		}
	}

	accounts := lo.MapToSlice(cs.Accounts, func(addr common.Address, acc ledger.Account) model.AccountDocument {
		return model.NewAccountDocument(addr, acc)
	})
	if err := s.db.UpsertAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to upsert accounts: %w", err)
	}

	if err := s.db.UpsertAllowances(ctx, lo.Map(cs.Allowances, func(a ledger.Allowance, _ int) model.AllowanceDocument {
		return model.NewAllowanceDocument(a)
	})); err != nil {
		return fmt.Errorf("failed to upsert allowances: %w", err)
	}

	events := model.NewLedgerEventDocuments(sequence, operation.String(), cs.Timestamp, cs.Events)
	if err := s.db.SaveLedgerEvents(ctx, events); err != nil {
		return fmt.Errorf("failed to save ledger events: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, operation types.Operation, sequence uint64, cs *ledger.ChangeSet) {
	if s.publisher == nil || len(cs.Events) == 0 {
		return
	}

	msg := queue.NewLedgerEventMessage(sequence, operation.String(), cs.Timestamp, cs.Events)
	if err := s.publisher.Publish(ctx, msg); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().
			Err(err).
			Uint64("sequence", sequence).
			Msg("Failed to publish ledger events")
	}
}
