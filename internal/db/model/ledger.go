package model

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
)

// LedgerMetaID is the _id of the single ledger meta document.
const LedgerMetaID = "ledger"

// Amounts are stored as base 10 strings since they do not fit in int64.

type LedgerMetaDocument struct {
	ID          string `bson:"_id"`
	Revision    uint64 `bson:"revision"`
	TotalSupply string `bson:"total_supply"`
	// Sequence counts committed operations and guards against concurrent writers.
	Sequence    uint64 `bson:"sequence"`
	LastUpdated uint64 `bson:"last_updated"`
}

type AssetDocument struct {
	Asset               string `bson:"_id"`
	EmissionPerSecond   string `bson:"emission_per_second"`
	Index               string `bson:"index"`
	LastUpdateTimestamp uint64 `bson:"last_update_timestamp"`
}

type AccountDocument struct {
	Address           string `bson:"_id"`
	Balance           string `bson:"balance"`
	CooldownTimestamp uint64 `bson:"cooldown_timestamp"`
	RewardIndex       string `bson:"reward_index"`
	UnclaimedRewards  string `bson:"unclaimed_rewards"`
	Nonce             uint64 `bson:"nonce"`
}

type AllowanceDocument struct {
	Owner   string `bson:"owner"`
	Spender string `bson:"spender"`
	Amount  string `bson:"amount"`
}

func parseAmount(field, value string) (uint256.Int, error) {
	if value == "" {
		return uint256.Int{}, nil
	}
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return uint256.Int{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return *v, nil
}

func NewAssetDocument(asset common.Address, data ledger.AssetData) *AssetDocument {
	return &AssetDocument{
		Asset:               asset.Hex(),
		EmissionPerSecond:   data.EmissionPerSecond.Dec(),
		Index:               data.Index.Dec(),
		LastUpdateTimestamp: data.LastUpdateTimestamp,
	}
}

func (d *AssetDocument) ToAssetData() (ledger.AssetData, error) {
	emission, err := parseAmount("emission_per_second", d.EmissionPerSecond)
	if err != nil {
		return ledger.AssetData{}, err
	}
	index, err := parseAmount("index", d.Index)
	if err != nil {
		return ledger.AssetData{}, err
	}
	return ledger.AssetData{
		EmissionPerSecond:   emission,
		Index:               index,
		LastUpdateTimestamp: d.LastUpdateTimestamp,
	}, nil
}

func NewAccountDocument(addr common.Address, acc ledger.Account) AccountDocument {
	return AccountDocument{
		Address:           addr.Hex(),
		Balance:           acc.Balance.Dec(),
		CooldownTimestamp: acc.CooldownTimestamp,
		RewardIndex:       acc.RewardIndex.Dec(),
		UnclaimedRewards:  acc.UnclaimedRewards.Dec(),
		Nonce:             acc.Nonce,
	}
}

func (d *AccountDocument) ToAccount() (common.Address, ledger.Account, error) {
	if !common.IsHexAddress(d.Address) {
		return common.Address{}, ledger.Account{}, fmt.Errorf("invalid account address %q", d.Address)
	}
	balance, err := parseAmount("balance", d.Balance)
	if err != nil {
		return common.Address{}, ledger.Account{}, err
	}
	index, err := parseAmount("reward_index", d.RewardIndex)
	if err != nil {
		return common.Address{}, ledger.Account{}, err
	}
	unclaimed, err := parseAmount("unclaimed_rewards", d.UnclaimedRewards)
	if err != nil {
		return common.Address{}, ledger.Account{}, err
	}
	return common.HexToAddress(d.Address), ledger.Account{
		Balance:           balance,
		CooldownTimestamp: d.CooldownTimestamp,
		RewardIndex:       index,
		UnclaimedRewards:  unclaimed,
		Nonce:             d.Nonce,
	}, nil
}

func NewAllowanceDocument(a ledger.Allowance) AllowanceDocument {
	return AllowanceDocument{
		Owner:   a.Owner.Hex(),
		Spender: a.Spender.Hex(),
		Amount:  a.Amount.Dec(),
	}
}

func (d *AllowanceDocument) ToAllowance() (ledger.Allowance, error) {
	amount, err := parseAmount("amount", d.Amount)
	if err != nil {
		return ledger.Allowance{}, err
	}
	return ledger.Allowance{
		Owner:   common.HexToAddress(d.Owner),
		Spender: common.HexToAddress(d.Spender),
		Amount:  amount,
	}, nil
}

// ParseTotalSupply decodes the stored total supply.
func (d *LedgerMetaDocument) ParseTotalSupply() (uint256.Int, error) {
	return parseAmount("total_supply", d.TotalSupply)
}
