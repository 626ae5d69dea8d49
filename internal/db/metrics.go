package db

import (
	"context"
	"time"

	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.run("WithTransaction", func() error {
		return d.db.WithTransaction(ctx, fn)
	})
}

func (d *DbWithMetrics) GetLedgerMeta(ctx context.Context) (result *model.LedgerMetaDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerMeta", func() error {
		result, err = d.db.GetLedgerMeta(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveLedgerMeta(ctx context.Context, expectedSequence uint64, doc *model.LedgerMetaDocument) error {
	return d.run("SaveLedgerMeta", func() error {
		return d.db.SaveLedgerMeta(ctx, expectedSequence, doc)
	})
}

func (d *DbWithMetrics) GetAsset(ctx context.Context, asset string) (result *model.AssetDocument, err error) {
	//nolint:errcheck
	d.run("GetAsset", func() error {
		result, err = d.db.GetAsset(ctx, asset)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertAsset(ctx context.Context, doc *model.AssetDocument) error {
	return d.run("UpsertAsset", func() error {
		return d.db.UpsertAsset(ctx, doc)
	})
}

func (d *DbWithMetrics) GetAccount(ctx context.Context, address string) (result *model.AccountDocument, err error) {
	//nolint:errcheck
	d.run("GetAccount", func() error {
		result, err = d.db.GetAccount(ctx, address)
		return err
	})
	return
}

func (d *DbWithMetrics) FindAccounts(ctx context.Context) (result []model.AccountDocument, err error) {
	//nolint:errcheck
	d.run("FindAccounts", func() error {
		result, err = d.db.FindAccounts(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertAccounts(ctx context.Context, docs []model.AccountDocument) error {
	return d.run("UpsertAccounts", func() error {
		return d.db.UpsertAccounts(ctx, docs)
	})
}

func (d *DbWithMetrics) FindAllowances(ctx context.Context) (result []model.AllowanceDocument, err error) {
	//nolint:errcheck
	d.run("FindAllowances", func() error {
		result, err = d.db.FindAllowances(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertAllowances(ctx context.Context, docs []model.AllowanceDocument) error {
	return d.run("UpsertAllowances", func() error {
		return d.db.UpsertAllowances(ctx, docs)
	})
}

func (d *DbWithMetrics) SaveLedgerEvents(ctx context.Context, docs []model.LedgerEventDocument) error {
	return d.run("SaveLedgerEvents", func() error {
		return d.db.SaveLedgerEvents(ctx, docs)
	})
}

func (d *DbWithMetrics) FindLedgerEvents(ctx context.Context, beforeSequence uint64, limit int64) (result []model.LedgerEventDocument, err error) {
	//nolint:errcheck
	d.run("FindLedgerEvents", func() error {
		result, err = d.db.FindLedgerEvents(ctx, beforeSequence, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTokenBalance(ctx context.Context, token, holder string) (result string, err error) {
	//nolint:errcheck
	d.run("GetTokenBalance", func() error {
		result, err = d.db.GetTokenBalance(ctx, token, holder)
		return err
	})
	return
}

func (d *DbWithMetrics) SetTokenBalance(ctx context.Context, token, holder, balance string) error {
	return d.run("SetTokenBalance", func() error {
		return d.db.SetTokenBalance(ctx, token, holder, balance)
	})
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
