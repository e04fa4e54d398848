package merkle

import (
	"fmt"
	"testing"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

var benchSizes = []int{10, 100, 1000, 10000}

// BenchmarkMerkleTreeBuild benchmarks merkle tree construction with various sizes
func BenchmarkMerkleTreeBuild(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			leaves := createTestLeaves(size)
			h := hasher.NewSHA256()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = NewTree(leaves, h)
			}
		})
	}
}

// BenchmarkMerkleTreeBuildByHasher compares the bundled hashers on one size
func BenchmarkMerkleTreeBuildByHasher(b *testing.B) {
	leaves := createTestLeaves(1000)

	for _, name := range hasher.Names() {
		h, _ := hasher.ByName(name, 0)

		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = NewTree(leaves, h)
			}
		})
	}
}

// BenchmarkMerkleProofGeneration benchmarks proof generation
func BenchmarkMerkleProofGeneration(b *testing.B) {
	for _, size := range benchSizes {
		tree, _ := NewTree(createTestLeaves(size), hasher.NewSHA256())

		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = tree.GenerateProof(i % size)
			}
		})
	}
}

// BenchmarkMerkleProofVerification benchmarks proof verification
func BenchmarkMerkleProofVerification(b *testing.B) {
	for _, size := range benchSizes {
		h := hasher.NewSHA256()
		tree, _ := NewTree(createTestLeaves(size), h)
		proof, _ := tree.GenerateProof(0)
		root := tree.Root()

		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = VerifyProof(h, proof, root)
			}
		})
	}
}
