package pkg

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress parses a 0x prefixed hex address. Mixed case input must carry
// a valid EIP-55 checksum, all lower or all upper case input is accepted as is.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	addr := common.HexToAddress(s)

	hex := s[len(s)-2*common.AddressLength:]
	if isMixedCase(hex) && addr.Hex()[2:] != hex {
		return common.Address{}, fmt.Errorf("invalid address checksum %q", s)
	}
	return addr, nil
}

func isMixedCase(s string) bool {
	var lower, upper bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'A' && c <= 'F':
			upper = true
		}
	}
	return lower && upper
}
