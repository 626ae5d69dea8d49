package ledger

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var ErrStaleTransaction = newError(KindState, "STALE_TRANSACTION")

// TokenTransfer is a custody movement of an external token that must happen
// together with the ledger changes.
type TokenTransfer struct {
	Token  common.Address
	From   common.Address
	To     common.Address
	Amount uint256.Int
}

type Allowance struct {
	Owner   common.Address
	Spender common.Address
	Amount  uint256.Int
}

// ChangeSet is everything a transaction wrote. Asset is nil when the reward
// index state was not touched.
type ChangeSet struct {
	Timestamp   uint64
	Revision    uint64
	TotalSupply uint256.Int
	Asset       *AssetData
	Accounts    map[common.Address]Account
	Allowances  []Allowance
	Transfers   []TokenTransfer
	Events      []Event
}

type Tx struct {
	l    *Ledger
	seq  uint64
	now  uint64
	done bool

	revision    uint64
	totalSupply uint256.Int
	asset       AssetData
	assetDirty  bool
	accounts    map[common.Address]*Account
	allowances  map[allowanceKey]uint256.Int
	transfers   []TokenTransfer
	events      []Event
}

func (tx *Tx) Now() uint64 {
	return tx.now
}

// account returns the transaction's working copy of addr.
func (tx *Tx) account(addr common.Address) *Account {
	if acc, ok := tx.accounts[addr]; ok {
		return acc
	}
	acc := tx.l.state.Accounts[addr]
	tx.accounts[addr] = &acc
	return &acc
}

func (tx *Tx) allowance(owner, spender common.Address) uint256.Int {
	key := allowanceKey{Owner: owner, Spender: spender}
	if v, ok := tx.allowances[key]; ok {
		return v
	}
	return tx.l.state.Allowances[key]
}

func (tx *Tx) setAllowance(owner, spender common.Address, amount uint256.Int) {
	tx.allowances[allowanceKey{Owner: owner, Spender: spender}] = amount
}

func (tx *Tx) emit(e Event) {
	tx.events = append(tx.events, e)
}

func (tx *Tx) moveToken(token, from, to common.Address, amount uint256.Int) {
	tx.transfers = append(tx.transfers, TokenTransfer{Token: token, From: from, To: to, Amount: amount})
}

func (tx *Tx) Events() []Event {
	return slices.Clone(tx.events)
}

func (tx *Tx) ChangeSet() *ChangeSet {
	cs := &ChangeSet{
		Timestamp:   tx.now,
		Revision:    tx.revision,
		TotalSupply: tx.totalSupply,
		Accounts:    make(map[common.Address]Account, len(tx.accounts)),
		Transfers:   slices.Clone(tx.transfers),
		Events:      slices.Clone(tx.events),
	}
	if tx.assetDirty {
		asset := tx.asset
		cs.Asset = &asset
	}
	for addr, acc := range tx.accounts {
		cs.Accounts[addr] = *acc
	}
	for key, amount := range tx.allowances {
		cs.Allowances = append(cs.Allowances, Allowance{Owner: key.Owner, Spender: key.Spender, Amount: amount})
	}
	return cs
}

// Commit applies the buffered writes. It fails if another transaction was
// committed after this one began.
func (tx *Tx) Commit() error {
	if tx.done || tx.seq != tx.l.seq {
		return ErrStaleTransaction
	}
	s := tx.l.state
	s.Revision = tx.revision
	s.TotalSupply = tx.totalSupply
	s.Asset = tx.asset
	for addr, acc := range tx.accounts {
		s.Accounts[addr] = *acc
	}
	for key, amount := range tx.allowances {
		if amount.IsZero() {
			delete(s.Allowances, key)
			continue
		}
		s.Allowances[key] = amount
	}
	tx.done = true
	tx.l.seq++
	return nil
}

func (tx *Tx) requireInitialized() error {
	if tx.revision == 0 {
		return ErrNotInitialized
	}
	return nil
}
