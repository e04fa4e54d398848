package hasher

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Keccak256 hashes with keccak256, the same pairing Solidity uses for
// keccak256(abi.encodePacked(left, right)).
type Keccak256 struct{}

func NewKeccak256() Keccak256 {
	return Keccak256{}
}

func (Keccak256) HashLeaf(data []byte) []byte {
	return crypto.Keccak256(data)
}

func (Keccak256) HashPair(left, right []byte) []byte {
	return crypto.Keccak256(left, right)
}
