package merkle

import (
	"bytes"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

// CalculateRoot recomputes the root implied by proof.
// Starting from the leaf hash, each path entry is combined on the side it
// records, reproducing the pairing used when the tree was built.
func CalculateRoot(h hasher.Hasher, proof *MerkleProof) []byte {
	current := bytes.Clone(proof.Leaf)

	for _, node := range proof.Path {
		if node.Side == SideLeft {
			current = h.HashPair(node.Hash, current)
		} else {
			current = h.HashPair(current, node.Hash)
		}
	}

	return current
}

// VerifyProof reports whether proof recomputes exactly root under h.
// A proof checked with a different hasher than the one that built the tree
// is not an error; it simply does not verify.
func VerifyProof(h hasher.Hasher, proof *MerkleProof, root []byte) bool {
	if proof == nil || h == nil {
		return false
	}
	return bytes.Equal(CalculateRoot(h, proof), root)
}

// VerifyLeaf is VerifyProof for a caller holding the raw leaf bytes:
// data must hash to proof.Leaf as well.
func VerifyLeaf(h hasher.Hasher, data []byte, proof *MerkleProof, root []byte) bool {
	if proof == nil || h == nil {
		return false
	}
	if !bytes.Equal(h.HashLeaf(data), proof.Leaf) {
		return false
	}
	return VerifyProof(h, proof, root)
}

// CalculateRoot is the method form of the package-level CalculateRoot.
func (p *MerkleProof) CalculateRoot(h hasher.Hasher) []byte {
	return CalculateRoot(h, p)
}

// Verify is the method form of VerifyProof.
func (p *MerkleProof) Verify(h hasher.Hasher, root []byte) bool {
	return VerifyProof(h, p, root)
}
