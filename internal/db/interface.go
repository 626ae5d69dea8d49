package db

import (
	"context"

	"github.com/kimberlabs/staking-ledger/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// WithTransaction runs fn in a multi document transaction. Every call
	// made with the context handed to fn joins the transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// GetLedgerMeta returns NotFoundError if the ledger was never persisted.
	GetLedgerMeta(ctx context.Context) (*model.LedgerMetaDocument, error)
	// SaveLedgerMeta stores doc if the stored sequence is still
	// expectedSequence, otherwise it returns SequenceConflictError.
	SaveLedgerMeta(ctx context.Context, expectedSequence uint64, doc *model.LedgerMetaDocument) error

	GetAsset(ctx context.Context, asset string) (*model.AssetDocument, error)
	UpsertAsset(ctx context.Context, doc *model.AssetDocument) error

	GetAccount(ctx context.Context, address string) (*model.AccountDocument, error)
	FindAccounts(ctx context.Context) ([]model.AccountDocument, error)
	UpsertAccounts(ctx context.Context, docs []model.AccountDocument) error

	FindAllowances(ctx context.Context) ([]model.AllowanceDocument, error)
	// UpsertAllowances removes allowances whose amount is zero.
	UpsertAllowances(ctx context.Context, docs []model.AllowanceDocument) error

	SaveLedgerEvents(ctx context.Context, docs []model.LedgerEventDocument) error
	FindLedgerEvents(ctx context.Context, beforeSequence uint64, limit int64) ([]model.LedgerEventDocument, error)

	GetTokenBalance(ctx context.Context, token, holder string) (string, error)
	SetTokenBalance(ctx context.Context, token, holder, balance string) error
}
