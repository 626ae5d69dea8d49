package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kimberlabs/staking-ledger/internal/db/model"
)

func (db *Database) GetLedgerMeta(ctx context.Context) (*model.LedgerMetaDocument, error) {
	var doc model.LedgerMetaDocument
	err := db.collection(model.LedgerMetaCollection).
		FindOne(ctx, bson.M{"_id": model.LedgerMetaID}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.LedgerMetaID,
				Message: "ledger has not been initialized",
			}
		}
		return nil, err
	}
	return &doc, nil
}

func (db *Database) SaveLedgerMeta(ctx context.Context, expectedSequence uint64, doc *model.LedgerMetaDocument) error {
	filter := bson.M{
		"_id":      model.LedgerMetaID,
		"sequence": expectedSequence,
	}
	update := bson.M{
		"$set": bson.M{
			"revision":     doc.Revision,
			"total_supply": doc.TotalSupply,
			"sequence":     doc.Sequence,
			"last_updated": doc.LastUpdated,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.LedgerMetaCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		// the upsert collides with the existing document when its sequence moved on
		if mongo.IsDuplicateKeyError(err) {
			return &SequenceConflictError{
				Expected: expectedSequence,
				Message:  fmt.Sprintf("ledger sequence is no longer %d", expectedSequence),
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetAsset(ctx context.Context, asset string) (*model.AssetDocument, error) {
	var doc model.AssetDocument
	err := db.collection(model.AssetCollection).
		FindOne(ctx, bson.M{"_id": asset}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     asset,
				Message: "asset not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

func (db *Database) UpsertAsset(ctx context.Context, doc *model.AssetDocument) error {
	_, err := db.collection(model.AssetCollection).ReplaceOne(
		ctx,
		bson.M{"_id": doc.Asset},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (db *Database) GetAccount(ctx context.Context, address string) (*model.AccountDocument, error) {
	var doc model.AccountDocument
	err := db.collection(model.AccountCollection).
		FindOne(ctx, bson.M{"_id": address}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "account not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

func (db *Database) FindAccounts(ctx context.Context) ([]model.AccountDocument, error) {
	cursor, err := db.collection(model.AccountCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.AccountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (db *Database) UpsertAccounts(ctx context.Context, docs []model.AccountDocument) error {
	if len(docs) == 0 {
		return nil
	}

	writes := lo.Map(docs, func(doc model.AccountDocument, _ int) mongo.WriteModel {
		return mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doc.Address}).
			SetReplacement(doc).
			SetUpsert(true)
	})
	_, err := db.collection(model.AccountCollection).BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}

func (db *Database) FindAllowances(ctx context.Context) ([]model.AllowanceDocument, error) {
	cursor, err := db.collection(model.AllowanceCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.AllowanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (db *Database) UpsertAllowances(ctx context.Context, docs []model.AllowanceDocument) error {
	if len(docs) == 0 {
		return nil
	}

	writes := lo.Map(docs, func(doc model.AllowanceDocument, _ int) mongo.WriteModel {
		filter := bson.M{"owner": doc.Owner, "spender": doc.Spender}
		if doc.Amount == "" || doc.Amount == "0" {
			return mongo.NewDeleteOneModel().SetFilter(filter)
		}
		return mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$set": bson.M{"amount": doc.Amount}}).
			SetUpsert(true)
	})
	_, err := db.collection(model.AllowanceCollection).BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}

func (db *Database) SaveLedgerEvents(ctx context.Context, docs []model.LedgerEventDocument) error {
	if len(docs) == 0 {
		return nil
	}

	_, err := db.collection(model.LedgerEventCollection).InsertMany(ctx, lo.ToAnySlice(docs))
	if err != nil {
		var writeErr mongo.BulkWriteException
		if errors.As(err, &writeErr) && mongo.IsDuplicateKeyError(writeErr) {
			return &DuplicateKeyError{
				Key:     fmt.Sprintf("%d", docs[0].Sequence),
				Message: "ledger events already stored",
			}
		}
		return err
	}
	return nil
}

// FindLedgerEvents returns up to limit events with a sequence lower than
// beforeSequence, newest first. Zero beforeSequence starts from the latest.
func (db *Database) FindLedgerEvents(ctx context.Context, beforeSequence uint64, limit int64) ([]model.LedgerEventDocument, error) {
	filter := bson.M{}
	if beforeSequence > 0 {
		filter["sequence"] = bson.M{"$lt": beforeSequence}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "sequence", Value: -1}, {Key: "position", Value: 1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.LedgerEventCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.LedgerEventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (db *Database) GetTokenBalance(ctx context.Context, token, holder string) (string, error) {
	var doc model.TokenBalanceDocument
	err := db.collection(model.TokenBalanceCollection).
		FindOne(ctx, bson.M{"token": token, "holder": holder}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "0", nil
		}
		return "", err
	}
	return doc.Balance, nil
}

func (db *Database) SetTokenBalance(ctx context.Context, token, holder, balance string) error {
	filter := bson.M{"token": token, "holder": holder}
	update := bson.M{"$set": bson.M{"balance": balance}}
	_, err := db.collection(model.TokenBalanceCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
