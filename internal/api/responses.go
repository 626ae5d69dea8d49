package api

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/samber/lo"

	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/services"
)

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type amountResponse struct {
	Amount string `json:"amount"`
}

type assetResponse struct {
	EmissionPerSecond   string `json:"emissionPerSecond"`
	Index               string `json:"index"`
	LastUpdateTimestamp uint64 `json:"lastUpdateTimestamp"`
}

type ledgerResponse struct {
	Name            string        `json:"name"`
	Symbol          string        `json:"symbol"`
	Decimals        uint8         `json:"decimals"`
	ChainID         uint64        `json:"chainId"`
	Address         string        `json:"address"`
	StakedToken     string        `json:"stakedToken"`
	RewardToken     string        `json:"rewardToken"`
	RewardsVault    string        `json:"rewardsVault"`
	EmissionManager string        `json:"emissionManager"`
	CooldownSeconds uint64        `json:"cooldownSeconds"`
	UnstakeWindow   uint64        `json:"unstakeWindow"`
	DistributionEnd uint64        `json:"distributionEnd"`
	Revision        uint64        `json:"revision"`
	DomainSeparator string        `json:"domainSeparator"`
	TotalSupply     string        `json:"totalSupply"`
	Asset           assetResponse `json:"asset"`
	Sequence        uint64        `json:"sequence"`
	Timestamp       uint64        `json:"timestamp"`
}

type accountResponse struct {
	Address           string `json:"address"`
	Balance           string `json:"balance"`
	CooldownTimestamp uint64 `json:"cooldownTimestamp"`
	CooldownState     string `json:"cooldownState"`
	RewardIndex       string `json:"rewardIndex"`
	UnclaimedRewards  string `json:"unclaimedRewards"`
	TotalRewards      string `json:"totalRewards"`
	Nonce             uint64 `json:"nonce"`
	Timestamp         uint64 `json:"timestamp"`
}

type allowanceResponse struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type tokenBalanceResponse struct {
	Token   string `json:"token"`
	Holder  string `json:"holder"`
	Balance string `json:"balance"`
}

type eventResponse struct {
	Sequence   uint64            `json:"sequence"`
	Position   int               `json:"position"`
	Operation  string            `json:"operation"`
	Timestamp  uint64            `json:"timestamp"`
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func newLedgerResponse(info *services.LedgerInfo) ledgerResponse {
	p := info.Params
	return ledgerResponse{
		Name:            p.Name,
		Symbol:          p.Symbol,
		Decimals:        p.Decimals,
		ChainID:         p.ChainID,
		Address:         p.Address.Hex(),
		StakedToken:     p.StakedToken.Hex(),
		RewardToken:     p.RewardToken.Hex(),
		RewardsVault:    p.RewardsVault.Hex(),
		EmissionManager: p.EmissionManager.Hex(),
		CooldownSeconds: p.CooldownSeconds,
		UnstakeWindow:   p.UnstakeWindow,
		DistributionEnd: p.DistributionEnd,
		Revision:        info.Revision,
		DomainSeparator: info.DomainSeparator.Hex(),
		TotalSupply:     info.TotalSupply.Dec(),
		Asset: assetResponse{
			EmissionPerSecond:   info.Asset.EmissionPerSecond.Dec(),
			Index:               info.Asset.Index.Dec(),
			LastUpdateTimestamp: info.Asset.LastUpdateTimestamp,
		},
		Sequence:  info.Sequence,
		Timestamp: info.Timestamp,
	}
}

func newAccountResponse(info *services.AccountInfo) accountResponse {
	return accountResponse{
		Address:           info.Address.Hex(),
		Balance:           info.Account.Balance.Dec(),
		CooldownTimestamp: info.Account.CooldownTimestamp,
		CooldownState:     info.CooldownState.String(),
		RewardIndex:       info.Account.RewardIndex.Dec(),
		UnclaimedRewards:  info.Account.UnclaimedRewards.Dec(),
		TotalRewards:      info.TotalRewards.Dec(),
		Nonce:             info.Account.Nonce,
		Timestamp:         info.Timestamp,
	}
}

func newAllowanceResponse(owner, spender common.Address, amount uint256.Int) allowanceResponse {
	return allowanceResponse{
		Owner:   owner.Hex(),
		Spender: spender.Hex(),
		Amount:  amount.Dec(),
	}
}

func newEventResponses(docs []model.LedgerEventDocument) []eventResponse {
	return lo.Map(docs, func(doc model.LedgerEventDocument, _ int) eventResponse {
		return eventResponse{
			Sequence:   doc.Sequence,
			Position:   doc.Position,
			Operation:  doc.Operation,
			Timestamp:  doc.Timestamp,
			Type:       doc.Type,
			Attributes: doc.Attributes,
		}
	})
}
