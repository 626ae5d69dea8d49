package queue

import (
	"strings"

	"github.com/samber/lo"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
)

type EventMessage struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// LedgerEventMessage carries the events of one committed ledger operation.
type LedgerEventMessage struct {
	Sequence  uint64         `json:"sequence"`
	Operation string         `json:"operation"`
	Timestamp uint64         `json:"timestamp"`
	Events    []EventMessage `json:"events"`
}

func NewLedgerEventMessage(sequence uint64, operation string, timestamp uint64, events []ledger.Event) *LedgerEventMessage {
	return &LedgerEventMessage{
		Sequence:  sequence,
		Operation: operation,
		Timestamp: timestamp,
		Events: lo.Map(events, func(e ledger.Event, _ int) EventMessage {
			return EventMessage{
				Type:       e.Type().String(),
				Attributes: e.Attributes(),
			}
		}),
	}
}

// RoutingKey is the lower cased operation, e.g. ledger.stake.
func (m *LedgerEventMessage) RoutingKey() string {
	return "ledger." + strings.ToLower(m.Operation)
}
