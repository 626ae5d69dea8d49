//go:build integration

package db_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/testutil"
)

var (
	testDB       *db.Database
	testDbConfig *config.DbConfig
)

func TestMain(m *testing.M) {
	// first setup container with MongoDb
	dbConfig, cleanup, err := testutil.SetupMongoContainer("mongo-integration-tests-db")
	if err != nil {
		log.Fatalf("failed to setup mongo container: %v", err)
	}
	testDbConfig = dbConfig

	// apply migrations
	err = model.Setup(context.Background(), dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to init mongo database: %v", err)
	}

	// using config from container mongo initialize client used in tests
	testDB, err = setupClient(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup client: %v", err)
	}

	// integration tests run on this line
	code := m.Run()
	cleanup()

	os.Exit(code)
}

func setupClient(cfg *config.DbConfig) (*db.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.New(ctx, *cfg)
}

func resetDatabase(t *testing.T) {
	t.Helper()

	err := testutil.ResetDatabase(
		context.Background(),
		testDbConfig,
		model.LedgerMetaCollection,
		model.AssetCollection,
		model.AccountCollection,
		model.AllowanceCollection,
		model.LedgerEventCollection,
		model.TokenBalanceCollection,
	)
	if err != nil {
		t.Fatalf("failed to reset database: %v", err)
	}
}
