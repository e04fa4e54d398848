package hasher

import (
	merkletree "github.com/wealdtech/go-merkletree/v2"
)

// HashType wraps a go-merkletree hash type so it can back a tree.
// Leaves are Hash(data), pairs are Hash(left, right).
type HashType struct {
	ht merkletree.HashType
}

// FromHashType adapts ht. The returned hasher is as safe for concurrent use
// as ht itself; the go-merkletree hash types are stateless.
func FromHashType(ht merkletree.HashType) *HashType {
	return &HashType{ht: ht}
}

func (h *HashType) HashLeaf(data []byte) []byte {
	return h.ht.Hash(data)
}

func (h *HashType) HashPair(left, right []byte) []byte {
	return h.ht.Hash(left, right)
}
