package cli

import (
	"context"
	"fmt"

	"github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"

	"github.com/kimberlabs/staking-ledger/internal/clients/tokenclient"
	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/db"
	dbmodel "github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/queue"
	"github.com/kimberlabs/staking-ledger/internal/services"
)

// deps are the long lived clients every command builds the service from.
type deps struct {
	cfg      *config.Config
	database *db.Database
	queue    *queue.QueueManager
	zap      *zap.Logger
	service  *services.Service
}

func newDeps(ctx context.Context) (*deps, error) {
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return nil, fmt.Errorf("error while setting up ledger db model: %w", err)
	}

	database, err := db.New(ctx, cfg.Db)
	if err != nil {
		return nil, fmt.Errorf("error while creating db client: %w", err)
	}
	var dbClient db.DbInterface = db.NewDbWithMetrics(database)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("error while creating zap logger: %w", err)
	}

	qm, err := queue.NewQueueManager(ctx, cfg.Queue, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	var token tokenclient.TokenInterface = tokenclient.NewClient(dbClient)
	token = tokenclient.NewTokenClientWithMetrics(token)

	return &deps{
		cfg:      cfg,
		database: database,
		queue:    qm,
		zap:      zapLogger,
		service:  services.NewService(cfg, dbClient, token, qm, clock.NewDefaultClock()),
	}, nil
}

func (d *deps) Close(ctx context.Context) {
	d.queue.Shutdown()
	_ = d.zap.Sync()
	_ = d.database.Disconnect(ctx)
}
