package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type EventType string

const (
	EventTransfer           EventType = "Transfer"
	EventApproval           EventType = "Approval"
	EventStaked             EventType = "Staked"
	EventRedeem             EventType = "Redeem"
	EventCooldown           EventType = "Cooldown"
	EventRewardsAccrued     EventType = "RewardsAccrued"
	EventRewardsClaimed     EventType = "RewardsClaimed"
	EventAssetConfigUpdated EventType = "AssetConfigUpdated"
	EventAssetIndexUpdated  EventType = "AssetIndexUpdated"
	EventUserIndexUpdated   EventType = "UserIndexUpdated"
)

func (e EventType) String() string {
	return string(e)
}

// Event is emitted by a committed operation.
type Event interface {
	Type() EventType
	Attributes() map[string]string
}

// TransferEvent covers mints (From is zero) and burns (To is zero).
type TransferEvent struct {
	From  common.Address
	To    common.Address
	Value uint256.Int
}

func (e TransferEvent) Type() EventType { return EventTransfer }

func (e TransferEvent) Attributes() map[string]string {
	return map[string]string{
		"from":  e.From.Hex(),
		"to":    e.To.Hex(),
		"value": e.Value.Dec(),
	}
}

type ApprovalEvent struct {
	Owner   common.Address
	Spender common.Address
	Value   uint256.Int
}

func (e ApprovalEvent) Type() EventType { return EventApproval }

func (e ApprovalEvent) Attributes() map[string]string {
	return map[string]string{
		"owner":   e.Owner.Hex(),
		"spender": e.Spender.Hex(),
		"value":   e.Value.Dec(),
	}
}

type StakedEvent struct {
	From       common.Address
	OnBehalfOf common.Address
	Amount     uint256.Int
}

func (e StakedEvent) Type() EventType { return EventStaked }

func (e StakedEvent) Attributes() map[string]string {
	return map[string]string{
		"from":       e.From.Hex(),
		"onBehalfOf": e.OnBehalfOf.Hex(),
		"amount":     e.Amount.Dec(),
	}
}

type RedeemEvent struct {
	From   common.Address
	To     common.Address
	Amount uint256.Int
}

func (e RedeemEvent) Type() EventType { return EventRedeem }

func (e RedeemEvent) Attributes() map[string]string {
	return map[string]string{
		"from":   e.From.Hex(),
		"to":     e.To.Hex(),
		"amount": e.Amount.Dec(),
	}
}

type CooldownEvent struct {
	User common.Address
}

func (e CooldownEvent) Type() EventType { return EventCooldown }

func (e CooldownEvent) Attributes() map[string]string {
	return map[string]string{"user": e.User.Hex()}
}

type RewardsAccruedEvent struct {
	User   common.Address
	Amount uint256.Int
}

func (e RewardsAccruedEvent) Type() EventType { return EventRewardsAccrued }

func (e RewardsAccruedEvent) Attributes() map[string]string {
	return map[string]string{
		"user":   e.User.Hex(),
		"amount": e.Amount.Dec(),
	}
}

type RewardsClaimedEvent struct {
	From   common.Address
	To     common.Address
	Amount uint256.Int
}

func (e RewardsClaimedEvent) Type() EventType { return EventRewardsClaimed }

func (e RewardsClaimedEvent) Attributes() map[string]string {
	return map[string]string{
		"from":   e.From.Hex(),
		"to":     e.To.Hex(),
		"amount": e.Amount.Dec(),
	}
}

type AssetConfigUpdatedEvent struct {
	Asset             common.Address
	EmissionPerSecond uint256.Int
	TotalStaked       uint256.Int
}

func (e AssetConfigUpdatedEvent) Type() EventType { return EventAssetConfigUpdated }

func (e AssetConfigUpdatedEvent) Attributes() map[string]string {
	return map[string]string{
		"asset":             e.Asset.Hex(),
		"emissionPerSecond": e.EmissionPerSecond.Dec(),
		"totalStaked":       e.TotalStaked.Dec(),
	}
}

type AssetIndexUpdatedEvent struct {
	Asset common.Address
	Index uint256.Int
}

func (e AssetIndexUpdatedEvent) Type() EventType { return EventAssetIndexUpdated }

func (e AssetIndexUpdatedEvent) Attributes() map[string]string {
	return map[string]string{
		"asset": e.Asset.Hex(),
		"index": e.Index.Dec(),
	}
}

type UserIndexUpdatedEvent struct {
	User  common.Address
	Asset common.Address
	Index uint256.Int
}

func (e UserIndexUpdatedEvent) Type() EventType { return EventUserIndexUpdated }

func (e UserIndexUpdatedEvent) Attributes() map[string]string {
	return map[string]string{
		"user":  e.User.Hex(),
		"asset": e.Asset.Hex(),
		"index": e.Index.Dec(),
	}
}
