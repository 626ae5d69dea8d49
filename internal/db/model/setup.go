package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kimberlabs/staking-ledger/internal/config"
)

const (
	LedgerMetaCollection   = "ledger_meta"
	AssetCollection        = "ledger_assets"
	AccountCollection      = "ledger_accounts"
	AllowanceCollection    = "ledger_allowances"
	LedgerEventCollection  = "ledger_events"
	TokenBalanceCollection = "token_balances"
)

type index struct {
	Keys   bson.D
	Unique bool
}

var collections = map[string][]index{
	LedgerMetaCollection:   nil,
	AssetCollection:        nil,
	AccountCollection:      {{Keys: bson.D{{Key: "cooldown_timestamp", Value: 1}}}},
	AllowanceCollection:    {{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "spender", Value: 1}}, Unique: true}},
	LedgerEventCollection:  {{Keys: bson.D{{Key: "sequence", Value: -1}, {Key: "position", Value: 1}}, Unique: true}},
	TokenBalanceCollection: {{Keys: bson.D{{Key: "token", Value: 1}, {Key: "holder", Value: 1}}, Unique: true}},
}

// Setup creates the collections and their indexes. It is safe to run on
// every start.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOpts := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		clientOpts.SetAuth(credential)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	database := client.Database(cfg.DbName)

	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range indexes {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("Collections and Indexes created successfully.")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	existing, err := database.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	if err := database.CreateCollection(ctx, name); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	log.Ctx(ctx).Debug().Str("collection", name).Msg("Collection created")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	model := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}
	return nil
}
