// Package hasher defines how tree leaves are hashed and how two child hashes
// are combined into a parent. The tree, proof generator and proof verifier in
// pkg/merkle are polymorphic over this interface.
package hasher

// Hasher turns raw leaf bytes into a leaf hash and combines two ordered child
// hashes into a parent hash.
//
// Implementations must be deterministic, must accept any input including empty
// or nil slices, and must be safe to call concurrently. HashPair is order
// sensitive: HashPair(a, b) and HashPair(b, a) are expected to differ.
//
// A tree built with one Hasher only verifies proofs checked with the same
// Hasher. Using a different one is not detected; verification returns false.
type Hasher interface {
	HashLeaf(data []byte) []byte
	HashPair(left, right []byte) []byte
}
