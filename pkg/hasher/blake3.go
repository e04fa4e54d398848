package hasher

import (
	"github.com/zeebo/blake3"
)

// Blake3 hashes with 256-bit BLAKE3.
type Blake3 struct{}

func NewBlake3() Blake3 {
	return Blake3{}
}

func (Blake3) HashLeaf(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

func (Blake3) HashPair(left, right []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(nil)
}
