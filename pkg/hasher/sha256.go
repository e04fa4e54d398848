package hasher

import (
	"crypto/sha256"
)

// SHA256HashSize is the output length of the SHA256 hasher.
const SHA256HashSize = sha256.Size

// SHA256 hashes leaves as sha256(data) and pairs as sha256(left || right).
// It is the default hasher.
type SHA256 struct{}

// NewSHA256 returns the default SHA-256 hasher.
func NewSHA256() SHA256 {
	return SHA256{}
}

func (SHA256) HashLeaf(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func (SHA256) HashPair(left, right []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(nil)
}
