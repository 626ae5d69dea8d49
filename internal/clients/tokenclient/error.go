package tokenclient

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type InsufficientFundsError struct {
	Token     common.Address
	Holder    common.Address
	Balance   uint256.Int
	Requested uint256.Int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient %s balance of %s: have %s, need %s",
		e.Token.Hex(), e.Holder.Hex(), e.Balance.Dec(), e.Requested.Dec(),
	)
}

func IsInsufficientFundsError(err error) bool {
	var target *InsufficientFundsError
	return errors.As(err, &target)
}
