package ledger

import "github.com/holiman/uint256"

// Precision is the fixed-point scale of reward indexes.
var Precision = uint256.NewInt(1_000_000_000_000_000_000)

// MaxUint256 is the "everything" sentinel accepted by claims and permit deadlines.
var MaxUint256 = new(uint256.Int).SetAllOne()

func add(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

func sub(x, y *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return nil, ErrUnderflow
	}
	return z, nil
}

func mul(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// mulDiv returns floor(x*y/d). The product must fit in 256 bits.
func mulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	p, err := mul(x, y)
	if err != nil {
		return nil, err
	}
	return p.Div(p, d), nil
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
