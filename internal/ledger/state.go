package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Params are fixed for the lifetime of a revision. Address identifies the
// ledger: it is the verifying contract of signed authorizations and the key
// of its single reward asset.
type Params struct {
	Name            string
	Symbol          string
	Decimals        uint8
	ChainID         uint64
	Address         common.Address
	StakedToken     common.Address
	RewardToken     common.Address
	RewardsVault    common.Address
	EmissionManager common.Address
	CooldownSeconds uint64
	UnstakeWindow   uint64
	DistributionEnd uint64
}

// Account is everything the ledger tracks per holder.
type Account struct {
	Balance           uint256.Int
	CooldownTimestamp uint64
	RewardIndex       uint256.Int
	UnclaimedRewards  uint256.Int
	Nonce             uint64
}

// AssetData is the reward index state of an asset.
type AssetData struct {
	EmissionPerSecond   uint256.Int
	Index               uint256.Int
	LastUpdateTimestamp uint64
}

type allowanceKey struct {
	Owner   common.Address
	Spender common.Address
}

// State is the mutable part of the ledger.
type State struct {
	Revision    uint64
	TotalSupply uint256.Int
	Asset       AssetData
	Accounts    map[common.Address]Account
	Allowances  map[allowanceKey]uint256.Int
}

func NewState() *State {
	return &State{
		Accounts:   make(map[common.Address]Account),
		Allowances: make(map[allowanceKey]uint256.Int),
	}
}

// SetAllowance is used when loading persisted state.
func (s *State) SetAllowance(owner, spender common.Address, amount uint256.Int) {
	s.Allowances[allowanceKey{Owner: owner, Spender: spender}] = amount
}
