package util

import (
	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
	"github.com/Layr-Labs/merkle-proof-go/pkg/merkle"
)

func StringToBytes(s string) []byte {
	return []byte(s)
}

func StringsToLeaves(items []string) [][]byte {
	leaves := make([][]byte, len(items))
	for i, s := range items {
		leaves[i] = StringToBytes(s)
	}
	return leaves
}

// NewTreeFromStrings builds a tree whose leaves are the UTF-8 bytes of items.
func NewTreeFromStrings(items []string, h hasher.Hasher) (*merkle.MerkleTree, error) {
	return merkle.NewTree(StringsToLeaves(items), h)
}

// VerifyElementInTree reports whether element is one of the tree's leaves and
// its proof verifies against the tree's root.
func VerifyElementInTree(tree *merkle.MerkleTree, element string) bool {
	h := tree.Hasher()
	proof, err := tree.GenerateProofByValue(h.HashLeaf(StringToBytes(element)))
	if err != nil {
		return false
	}
	return proof.Verify(h, tree.Root())
}
