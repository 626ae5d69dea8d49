package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// AssetConfigInput is one entry of a ConfigureAssets batch.
type AssetConfigInput struct {
	EmissionPerSecond uint256.Int
	TotalStaked       uint256.Int
	UnderlyingAsset   common.Address
}

// Stake mints amount to onBehalfOf and pulls the same amount of the staked
// token from caller.
func (tx *Tx) Stake(caller, onBehalfOf common.Address, amount uint256.Int) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	if amount.IsZero() {
		return ErrInvalidZeroAmount
	}
	if onBehalfOf == (common.Address{}) {
		return ErrInvalidRecipient
	}

	acc := tx.account(onBehalfOf)
	balance := acc.Balance
	if _, err := tx.settle(onBehalfOf, &balance); err != nil {
		return err
	}

	cooldown, err := tx.l.params.nextCooldownTimestamp(0, &amount, acc.CooldownTimestamp, &balance, tx.now)
	if err != nil {
		return err
	}
	acc.CooldownTimestamp = cooldown

	if err := tx.mint(onBehalfOf, amount); err != nil {
		return err
	}
	tx.moveToken(tx.l.params.StakedToken, caller, tx.l.params.Address, amount)
	tx.emit(StakedEvent{From: caller, OnBehalfOf: onBehalfOf, Amount: amount})
	return nil
}

// Redeem burns up to amount of caller's balance and releases the staked
// token to to. The caller's cooldown must be inside its unstake window.
// Amounts above the balance are capped to the balance.
func (tx *Tx) Redeem(caller, to common.Address, amount uint256.Int) (uint256.Int, error) {
	if err := tx.requireInitialized(); err != nil {
		return uint256.Int{}, err
	}
	if amount.IsZero() {
		return uint256.Int{}, ErrInvalidZeroAmount
	}
	if to == (common.Address{}) {
		return uint256.Int{}, ErrInvalidRecipient
	}

	acc := tx.account(caller)
	switch tx.l.params.CooldownStateAt(acc.CooldownTimestamp, tx.now) {
	case CooldownCooling:
		return uint256.Int{}, ErrInsufficientCooldown
	case CooldownInactive, CooldownExpired:
		return uint256.Int{}, ErrUnstakeWindowFinished
	}

	balance := acc.Balance
	redeemed := amount
	if redeemed.Gt(&balance) {
		redeemed = balance
	}

	if _, err := tx.settle(caller, &balance); err != nil {
		return uint256.Int{}, err
	}
	if err := tx.burn(caller, redeemed); err != nil {
		return uint256.Int{}, err
	}
	if acc.Balance.IsZero() {
		acc.CooldownTimestamp = 0
	}

	tx.moveToken(tx.l.params.StakedToken, tx.l.params.Address, to, redeemed)
	tx.emit(RedeemEvent{From: caller, To: to, Amount: redeemed})
	return redeemed, nil
}

// Cooldown starts caller's cooldown at the transaction time.
func (tx *Tx) Cooldown(caller common.Address) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	acc := tx.account(caller)
	if acc.Balance.IsZero() {
		return ErrInvalidBalanceOnCooldown
	}
	acc.CooldownTimestamp = tx.now
	tx.emit(CooldownEvent{User: caller})
	return nil
}

// ClaimRewards pays amount of caller's unclaimed rewards from the rewards
// vault to to. MaxUint256 claims everything.
func (tx *Tx) ClaimRewards(caller, to common.Address, amount uint256.Int) (uint256.Int, error) {
	if err := tx.requireInitialized(); err != nil {
		return uint256.Int{}, err
	}
	if to == (common.Address{}) {
		return uint256.Int{}, ErrInvalidRecipient
	}

	acc := tx.account(caller)
	balance := acc.Balance
	if _, err := tx.settle(caller, &balance); err != nil {
		return uint256.Int{}, err
	}

	claimed := amount
	if amount.Eq(MaxUint256) {
		claimed = acc.UnclaimedRewards
	}
	if claimed.Gt(&acc.UnclaimedRewards) {
		return uint256.Int{}, ErrInvalidAmount
	}
	remaining, err := sub(&acc.UnclaimedRewards, &claimed)
	if err != nil {
		return uint256.Int{}, err
	}
	acc.UnclaimedRewards = *remaining

	tx.moveToken(tx.l.params.RewardToken, tx.l.params.RewardsVault, to, claimed)
	tx.emit(RewardsClaimedEvent{From: caller, To: to, Amount: claimed})
	return claimed, nil
}

// Transfer moves amount from caller to to.
func (tx *Tx) Transfer(caller, to common.Address, amount uint256.Int) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	return tx.transfer(caller, to, amount)
}

// TransferFrom moves amount from from to to on behalf of spender and
// consumes the spender's allowance.
func (tx *Tx) TransferFrom(spender, from, to common.Address, amount uint256.Int) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	if err := tx.transfer(from, to, amount); err != nil {
		return err
	}
	allowed := tx.allowance(from, spender)
	if amount.Gt(&allowed) {
		return ErrInsufficientAllowance
	}
	left, err := sub(&allowed, &amount)
	if err != nil {
		return err
	}
	tx.setAllowance(from, spender, *left)
	tx.emit(ApprovalEvent{Owner: from, Spender: spender, Value: *left})
	return nil
}

// Approve sets the allowance of spender over owner's balance.
func (tx *Tx) Approve(owner, spender common.Address, amount uint256.Int) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	return tx.approve(owner, spender, amount)
}

func (tx *Tx) approve(owner, spender common.Address, amount uint256.Int) error {
	if owner == (common.Address{}) {
		return ErrInvalidOwner
	}
	if spender == (common.Address{}) {
		return ErrInvalidRecipient
	}
	tx.setAllowance(owner, spender, amount)
	tx.emit(ApprovalEvent{Owner: owner, Spender: spender, Value: amount})
	return nil
}

// ConfigureAssets updates emission rates. The index is settled with the old
// rate against the total staked reported by the emission manager before the
// new rate applies.
func (tx *Tx) ConfigureAssets(caller common.Address, inputs []AssetConfigInput) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	if caller != tx.l.params.EmissionManager {
		return ErrOnlyEmissionManager
	}
	for _, in := range inputs {
		if in.UnderlyingAsset != tx.l.params.Address {
			return ErrUnknownAsset
		}
	}

	for _, in := range inputs {
		if _, err := tx.updateAssetIndexWith(&in.TotalStaked); err != nil {
			return err
		}
		tx.asset.EmissionPerSecond = in.EmissionPerSecond
		tx.assetDirty = true
		tx.emit(AssetConfigUpdatedEvent{
			Asset:             in.UnderlyingAsset,
			EmissionPerSecond: in.EmissionPerSecond,
			TotalStaked:       in.TotalStaked,
		})
	}
	return nil
}

func (tx *Tx) transfer(from, to common.Address, amount uint256.Int) error {
	if amount.IsZero() {
		return ErrInvalidZeroAmount
	}
	if from == (common.Address{}) {
		return ErrInvalidOwner
	}
	if to == (common.Address{}) {
		return ErrInvalidRecipient
	}

	fromAcc := tx.account(from)
	fromBalance := fromAcc.Balance
	if amount.Gt(&fromBalance) {
		return ErrInsufficientBalance
	}

	if _, err := tx.settle(from, &fromBalance); err != nil {
		return err
	}

	if from != to {
		toAcc := tx.account(to)
		toBalance := toAcc.Balance
		if _, err := tx.settle(to, &toBalance); err != nil {
			return err
		}

		previousFromCooldown := fromAcc.CooldownTimestamp
		cooldown, err := tx.l.params.nextCooldownTimestamp(previousFromCooldown, &amount, toAcc.CooldownTimestamp, &toBalance, tx.now)
		if err != nil {
			return err
		}
		toAcc.CooldownTimestamp = cooldown

		if fromBalance.Eq(&amount) && previousFromCooldown != 0 {
			fromAcc.CooldownTimestamp = 0
		}

		left, err := sub(&fromAcc.Balance, &amount)
		if err != nil {
			return err
		}
		received, err := add(&toAcc.Balance, &amount)
		if err != nil {
			return err
		}
		fromAcc.Balance = *left
		toAcc.Balance = *received
	}

	tx.emit(TransferEvent{From: from, To: to, Value: amount})
	return nil
}

func (tx *Tx) mint(to common.Address, amount uint256.Int) error {
	supply, err := add(&tx.totalSupply, &amount)
	if err != nil {
		return err
	}
	acc := tx.account(to)
	balance, err := add(&acc.Balance, &amount)
	if err != nil {
		return err
	}
	tx.totalSupply = *supply
	acc.Balance = *balance
	tx.emit(TransferEvent{From: common.Address{}, To: to, Value: amount})
	return nil
}

func (tx *Tx) burn(from common.Address, amount uint256.Int) error {
	acc := tx.account(from)
	balance, err := sub(&acc.Balance, &amount)
	if err != nil {
		return err
	}
	supply, err := sub(&tx.totalSupply, &amount)
	if err != nil {
		return err
	}
	acc.Balance = *balance
	tx.totalSupply = *supply
	tx.emit(TransferEvent{From: from, To: common.Address{}, Value: amount})
	return nil
}
