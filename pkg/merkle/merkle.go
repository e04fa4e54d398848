package merkle

import (
	"bytes"
	"math/bits"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

// NewTree creates a binary merkle tree from raw leaves.
// Each leaf is hashed with h.HashLeaf; the tree keeps only its own copies of
// the hashes, so a hasher that returns its input does not alias the caller's leaves.
//
// If the number of leaves is not a power of two, the last leaf hash is
// duplicated until it is. Padding happens once at the leaf level, so every
// level above it has an even number of nodes until the root.
func NewTree(leaves [][]byte, h hasher.Hasher, opts ...Option) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyInput
	}
	if h == nil {
		return nil, ErrNilHasher
	}

	hashes := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		hashes[i] = bytes.Clone(h.HashLeaf(leaf))
	}

	return build(hashes, h, opts)
}

// NewTreeFromHashes creates a tree from leaves that are already hashed.
// The hashes are copied; padding and errors are the same as NewTree.
func NewTreeFromHashes(leafHashes [][]byte, h hasher.Hasher, opts ...Option) (*MerkleTree, error) {
	if len(leafHashes) == 0 {
		return nil, ErrEmptyInput
	}
	if h == nil {
		return nil, ErrNilHasher
	}

	hashes := make([][]byte, len(leafHashes))
	for i, lh := range leafHashes {
		hashes[i] = bytes.Clone(lh)
	}

	return build(hashes, h, opts)
}

func build(leaves [][]byte, h hasher.Hasher, opts []Option) (*MerkleTree, error) {
	mt := &MerkleTree{
		originalLeafCount: len(leaves),
		hasher:            h,
		logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(mt)
	}

	// Pad with the last hash value, not a re-hash of the raw leaf
	width := nextPowerOfTwo(len(leaves))
	last := leaves[len(leaves)-1]
	for len(leaves) < width {
		leaves = append(leaves, last)
	}

	// Build tree levels bottom-up
	levels := make([][][]byte, 0, bits.Len(uint(width)))
	levels = append(levels, leaves)

	currentLevel := leaves
	for len(currentLevel) > 1 {
		if len(currentLevel)%2 != 0 {
			return nil, errors.Wrapf(ErrInvariantViolation, "level %d has odd width %d", len(levels)-1, len(currentLevel))
		}

		nextLevel := make([][]byte, len(currentLevel)/2)
		for i := range nextLevel {
			nextLevel[i] = h.HashPair(currentLevel[2*i], currentLevel[2*i+1])
		}

		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	mt.levels = levels

	mt.logger.Sugar().Debugw("Built merkle tree",
		"leaves", mt.originalLeafCount,
		"padded_leaves", width,
		"height", len(levels),
	)

	return mt, nil
}

// Root returns the merkle root hash.
func (mt *MerkleTree) Root() []byte {
	return bytes.Clone(mt.levels[len(mt.levels)-1][0])
}

// LeafCount returns the number of leaves after padding. Valid proof indices
// are [0, LeafCount()).
func (mt *MerkleTree) LeafCount() int {
	return len(mt.levels[0])
}

// OriginalLeafCount returns the number of leaves supplied at construction.
func (mt *MerkleTree) OriginalLeafCount() int {
	return mt.originalLeafCount
}

// Height returns the number of levels, counting the leaf level and the root.
// A single-leaf tree has height 1.
func (mt *MerkleTree) Height() int {
	return len(mt.levels)
}

// Leaf returns the leaf hash at index in the padded leaf level.
func (mt *MerkleTree) Leaf(index int) ([]byte, bool) {
	if index < 0 || index >= mt.LeafCount() {
		return nil, false
	}
	return bytes.Clone(mt.levels[0][index]), true
}

// Hasher returns the hasher the tree was built with.
func (mt *MerkleTree) Hasher() hasher.Hasher {
	return mt.hasher
}

// IndexOf returns the first index whose leaf hash equals leafHash.
func (mt *MerkleTree) IndexOf(leafHash []byte) (int, bool) {
	for i, leaf := range mt.levels[0] {
		if bytes.Equal(leaf, leafHash) {
			return i, true
		}
	}
	return -1, false
}

// GenerateProof creates a merkle proof for the leaf at the given index.
// The index refers to the padded leaf level, so a padding duplicate can be
// proven like any other leaf.
func (mt *MerkleTree) GenerateProof(leafIndex int) (*MerkleProof, error) {
	if leafIndex < 0 || leafIndex >= mt.LeafCount() {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "leaf index %d out of bounds (tree has %d leaves)", leafIndex, mt.LeafCount())
	}

	path := make([]ProofNode, 0, len(mt.levels)-1)
	index := leafIndex

	// Traverse from leaf to root, collecting sibling hashes
	for level := 0; level < len(mt.levels)-1; level++ {
		path = append(path, ProofNode{
			Hash: bytes.Clone(mt.levels[level][siblingIndex(index)]),
			Side: siblingSide(index),
		})
		index = parentIndex(index)
	}

	return &MerkleProof{
		LeafIndex: leafIndex,
		Leaf:      bytes.Clone(mt.levels[0][leafIndex]),
		Path:      path,
	}, nil
}

// GenerateProofByValue creates a proof for the first leaf whose hash equals leafHash.
func (mt *MerkleTree) GenerateProofByValue(leafHash []byte) (*MerkleProof, error) {
	index, ok := mt.IndexOf(leafHash)
	if !ok {
		return nil, ErrLeafNotFound
	}
	return mt.GenerateProof(index)
}

// VerifyProof reports whether proof recomputes this tree's root using the
// tree's own hasher.
func (mt *MerkleTree) VerifyProof(proof *MerkleProof) bool {
	return VerifyProof(mt.hasher, proof, mt.levels[len(mt.levels)-1][0])
}

// nextPowerOfTwo returns the smallest power of two >= n, for n >= 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// siblingIndex is the other half of the pair index belongs to.
func siblingIndex(index int) int {
	return index ^ 1
}

// siblingSide is SideRight when index is a left child.
func siblingSide(index int) Side {
	if index%2 == 0 {
		return SideRight
	}
	return SideLeft
}

func parentIndex(index int) int {
	return index / 2
}
