package ledger

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

const (
	eip712Version = "1"
	signatureLen  = 65
)

var (
	eip712DomainTypeHash = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))
	permitTypeHash       = crypto.Keccak256Hash([]byte("Permit(address owner,address spender,uint256 value,uint256 nonce,uint256 deadline)"))
)

// PermitRequest is an allowance change signed off-chain by Owner.
type PermitRequest struct {
	Owner     common.Address
	Spender   common.Address
	Value     uint256.Int
	Deadline  uint256.Int
	Signature []byte
}

func word(b []byte) []byte {
	return common.LeftPadBytes(b, 32)
}

func uintWord(v *uint256.Int) []byte {
	w := v.Bytes32()
	return w[:]
}

// DomainSeparator binds signatures to one ledger instance on one chain.
func DomainSeparator(name string, chainID uint64, verifyingContract common.Address) common.Hash {
	return crypto.Keccak256Hash(
		eip712DomainTypeHash.Bytes(),
		crypto.Keccak256([]byte(name)),
		crypto.Keccak256([]byte(eip712Version)),
		uintWord(uint256.NewInt(chainID)),
		word(verifyingContract.Bytes()),
	)
}

// PermitDigest is the hash an owner signs to authorize spender.
func PermitDigest(domainSeparator common.Hash, owner, spender common.Address, value *uint256.Int, nonce uint64, deadline *uint256.Int) common.Hash {
	structHash := crypto.Keccak256(
		permitTypeHash.Bytes(),
		word(owner.Bytes()),
		word(spender.Bytes()),
		uintWord(value),
		uintWord(uint256.NewInt(nonce)),
		uintWord(deadline),
	)
	return crypto.Keccak256Hash([]byte{0x19, 0x01}, domainSeparator.Bytes(), structHash)
}

// recoverSigner accepts 65 byte r||s||v signatures with v in {27,28} and s
// in the lower half of the curve order, as ecrecover does.
func recoverSigner(digest common.Hash, signature []byte) (common.Address, bool) {
	if len(signature) != signatureLen {
		return common.Address{}, false
	}
	if signature[64] != 27 && signature[64] != 28 {
		return common.Address{}, false
	}
	sig := make([]byte, signatureLen)
	copy(sig, signature)
	sig[64] -= 27

	r := new(uint256.Int).SetBytes(sig[:32]).ToBig()
	s := new(uint256.Int).SetBytes(sig[32:64]).ToBig()
	if !crypto.ValidateSignatureValues(sig[64], r, s, true) {
		return common.Address{}, false
	}

	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(*pub), true
}

// Permit validates a signed authorization and applies it. Checks run in a
// fixed order: expiration, owner, signature against the owner's current
// nonce.
func (tx *Tx) Permit(req PermitRequest) error {
	if err := tx.requireInitialized(); err != nil {
		return err
	}
	if !req.Deadline.Eq(MaxUint256) && !req.Deadline.Gt(uint256.NewInt(tx.now)) {
		return ErrInvalidExpiration
	}
	if req.Owner == (common.Address{}) {
		return ErrInvalidOwner
	}

	acc := tx.account(req.Owner)
	digest := PermitDigest(tx.l.domainSeparator, req.Owner, req.Spender, &req.Value, acc.Nonce, &req.Deadline)
	signer, ok := recoverSigner(digest, req.Signature)
	if !ok || signer != req.Owner {
		return ErrInvalidSignature
	}

	if acc.Nonce == math.MaxUint64 {
		return ErrOverflow
	}
	acc.Nonce++
	return tx.approve(req.Owner, req.Spender, req.Value)
}
