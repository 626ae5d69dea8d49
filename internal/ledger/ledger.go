// Package ledger implements the staking ledger state machine: staked
// balances, index based reward accrual, the cooldown and unstake window
// and signed allowance authorizations.
//
// A Ledger is not safe for concurrent use. Every mutation goes through a Tx
// which buffers its writes until Commit, so a rejected operation or a
// failed persistence step leaves the ledger untouched.
package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type Ledger struct {
	params          Params
	state           *State
	domainSeparator common.Hash
	seq             uint64
}

// New wraps a loaded state. A nil state starts an empty, uninitialized ledger.
func New(params Params, state *State) *Ledger {
	if state == nil {
		state = NewState()
	}
	return &Ledger{
		params:          params,
		state:           state,
		domainSeparator: DomainSeparator(params.Name, params.ChainID, params.Address),
	}
}

func (l *Ledger) Params() Params {
	return l.params
}

func (l *Ledger) Revision() uint64 {
	return l.state.Revision
}

func (l *Ledger) DomainSeparator() common.Hash {
	return l.domainSeparator
}

func (l *Ledger) TotalSupply() uint256.Int {
	return l.state.TotalSupply
}

func (l *Ledger) Asset() AssetData {
	return l.state.Asset
}

// Account returns a copy of the account; unknown addresses read as zero.
func (l *Ledger) Account(addr common.Address) Account {
	return l.state.Accounts[addr]
}

func (l *Ledger) BalanceOf(addr common.Address) uint256.Int {
	return l.state.Accounts[addr].Balance
}

func (l *Ledger) Allowance(owner, spender common.Address) uint256.Int {
	return l.state.Allowances[allowanceKey{Owner: owner, Spender: spender}]
}

func (l *Ledger) Nonce(owner common.Address) uint64 {
	return l.state.Accounts[owner].Nonce
}

func (l *Ledger) CooldownState(addr common.Address, now uint64) CooldownState {
	return l.params.CooldownStateAt(l.state.Accounts[addr].CooldownTimestamp, now)
}

// TotalRewardsBalance projects the rewards claimable by addr at now without
// mutating anything.
func (l *Ledger) TotalRewardsBalance(addr common.Address, now uint64) (uint256.Int, error) {
	acc := l.state.Accounts[addr]
	index, err := NextAssetIndex(l.state.Asset, &l.state.TotalSupply, now, l.params.DistributionEnd)
	if err != nil {
		return uint256.Int{}, err
	}
	pending, err := AccruedRewards(&acc.Balance, &index, &acc.RewardIndex)
	if err != nil {
		return uint256.Int{}, err
	}
	total, err := add(&acc.UnclaimedRewards, pending)
	if err != nil {
		return uint256.Int{}, err
	}
	return *total, nil
}

// CooldownStats counts holders with a non-zero balance per cooldown state.
func (l *Ledger) CooldownStats(now uint64) map[CooldownState]int {
	stats := map[CooldownState]int{
		CooldownInactive:   0,
		CooldownCooling:    0,
		CooldownRedeemable: 0,
		CooldownExpired:    0,
	}
	for _, acc := range l.state.Accounts {
		if acc.Balance.IsZero() {
			continue
		}
		stats[l.params.CooldownStateAt(acc.CooldownTimestamp, now)]++
	}
	return stats
}

// Begin opens a transaction that observes now for its whole lifetime.
func (l *Ledger) Begin(now uint64) *Tx {
	return &Tx{
		l:           l,
		seq:         l.seq,
		now:         now,
		revision:    l.state.Revision,
		totalSupply: l.state.TotalSupply,
		asset:       l.state.Asset,
		accounts:    make(map[common.Address]*Account),
		allowances:  make(map[allowanceKey]uint256.Int),
	}
}
