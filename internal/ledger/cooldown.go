package ledger

import (
	"math"

	"github.com/holiman/uint256"
)

type CooldownState string

const (
	CooldownInactive   CooldownState = "INACTIVE"
	CooldownCooling    CooldownState = "COOLING"
	CooldownRedeemable CooldownState = "REDEEMABLE"
	CooldownExpired    CooldownState = "EXPIRED"
)

func (s CooldownState) String() string {
	return string(s)
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// CooldownStateAt classifies a cooldown timestamp at now.
func (p Params) CooldownStateAt(cooldownTimestamp, now uint64) CooldownState {
	if cooldownTimestamp == 0 {
		return CooldownInactive
	}
	unlock := saturatingAdd(cooldownTimestamp, p.CooldownSeconds)
	if now < unlock {
		return CooldownCooling
	}
	if now < saturatingAdd(unlock, p.UnstakeWindow) {
		return CooldownRedeemable
	}
	return CooldownExpired
}

// stale reports whether a cooldown started at ts can no longer reach its
// unstake window at now.
func (p Params) stale(ts, now uint64) bool {
	return saturatingAdd(saturatingAdd(ts, p.CooldownSeconds), p.UnstakeWindow) < now
}

// nextCooldownTimestamp computes the receiver's cooldown after it gets
// amount tokens from a sender whose cooldown is fromCooldown. A zero
// fromCooldown (fresh stake) counts as starting now.
func (p Params) nextCooldownTimestamp(
	fromCooldown uint64,
	amount *uint256.Int,
	toCooldown uint64,
	toBalance *uint256.Int,
	now uint64,
) (uint64, error) {
	if toCooldown == 0 {
		return 0, nil
	}
	if p.stale(toCooldown, now) {
		return 0, nil
	}
	if fromCooldown == 0 || p.stale(fromCooldown, now) {
		fromCooldown = now
	}
	if fromCooldown < toCooldown {
		return toCooldown, nil
	}

	weightedFrom, err := mul(amount, uint256.NewInt(fromCooldown))
	if err != nil {
		return 0, err
	}
	weightedTo, err := mul(toBalance, uint256.NewInt(toCooldown))
	if err != nil {
		return 0, err
	}
	numerator, err := add(weightedFrom, weightedTo)
	if err != nil {
		return 0, err
	}
	denominator, err := add(amount, toBalance)
	if err != nil {
		return 0, err
	}
	if denominator.IsZero() {
		return toCooldown, nil
	}
	return numerator.Div(numerator, denominator).Uint64(), nil
}
