package model

import "github.com/kimberlabs/staking-ledger/internal/ledger"

// LedgerEventDocument is an entry of the append only event log. Events of
// one operation share a sequence and are ordered by position.
type LedgerEventDocument struct {
	Sequence   uint64            `bson:"sequence"`
	Position   int               `bson:"position"`
	Operation  string            `bson:"operation"`
	Timestamp  uint64            `bson:"timestamp"`
	Type       string            `bson:"type"`
	Attributes map[string]string `bson:"attributes"`
}

func NewLedgerEventDocuments(sequence uint64, operation string, timestamp uint64, events []ledger.Event) []LedgerEventDocument {
	docs := make([]LedgerEventDocument, 0, len(events))
	for i, e := range events {
		docs = append(docs, LedgerEventDocument{
			Sequence:   sequence,
			Position:   i,
			Operation:  operation,
			Timestamp:  timestamp,
			Type:       e.Type().String(),
			Attributes: e.Attributes(),
		})
	}
	return docs
}

type TokenBalanceDocument struct {
	Token   string `bson:"token"`
	Holder  string `bson:"holder"`
	Balance string `bson:"balance"`
}
