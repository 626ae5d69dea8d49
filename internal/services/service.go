package services

import (
	"sync"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/kimberlabs/staking-ledger/internal/clients/tokenclient"
	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/queue"
)

// Service owns the in-memory ledger and keeps it in lockstep with the db.
// Operations are serialized: each one runs against the ledger, persists its
// change set in a single db transaction and only then commits in memory.
type Service struct {
	cfg       *config.Config
	db        db.DbInterface
	token     tokenclient.TokenInterface
	publisher queue.EventPublisher
	clock     clock.Clock

	mu     sync.Mutex
	ledger *ledger.Ledger
	// sequence is the number of operations persisted so far
	sequence uint64
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	token tokenclient.TokenInterface,
	publisher queue.EventPublisher,
	clk clock.Clock,
) *Service {
	return &Service{
		cfg:       cfg,
		db:        db,
		token:     token,
		publisher: publisher,
		clock:     clk,
	}
}

func (s *Service) now() uint64 {
	return uint64(s.clock.Now().Unix())
}
