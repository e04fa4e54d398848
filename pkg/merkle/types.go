package merkle

import (
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

// MerkleTree is a binary merkle tree built once from a fixed leaf set.
// It exposes no mutation methods and every accessor returns copies, so a
// built tree is safe for concurrent reads.
type MerkleTree struct {
	// levels stores all tree levels for proof generation
	// levels[0] = padded leaf hashes, levels[len-1] = [root]
	levels [][][]byte

	// originalLeafCount is the number of leaves supplied before padding
	originalLeafCount int

	hasher hasher.Hasher
	logger *zap.Logger
}

// Side records where a sibling sits relative to the node it is combined with.
type Side uint8

const (
	// SideRight means the sibling is the right-hand input: HashPair(current, sibling).
	SideRight Side = iota
	// SideLeft means the sibling is the left-hand input: HashPair(sibling, current).
	SideLeft
)

// ProofNode is one step of a sibling path.
type ProofNode struct {
	Hash []byte
	Side Side
}

// MerkleProof represents a proof that a leaf is included in the tree.
// It is self-contained: verifying it needs only a hasher and a root.
type MerkleProof struct {
	// LeafIndex is the index of the leaf in the padded leaf level
	LeafIndex int

	// Leaf is the hash of the leaf being proven
	Leaf []byte

	// Path contains the siblings from leaf to root
	// Path[0] is the sibling of the leaf, Path[len-1] is a child of the root
	Path []ProofNode
}
