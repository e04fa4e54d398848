package hasher

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Blake2b hashes with BLAKE2b-512 and truncates the digest to OutputSize bytes.
type Blake2b struct {
	outputSize int
}

// NewBlake2b returns a BLAKE2b hasher producing outputSize-byte hashes.
// outputSize must be between 1 and 64.
func NewBlake2b(outputSize int) (*Blake2b, error) {
	if outputSize < 1 || outputSize > blake2b.Size {
		return nil, errors.Wrapf(ErrInvalidOutputSize, "blake2b output size %d not in [1, %d]", outputSize, blake2b.Size)
	}
	return &Blake2b{outputSize: outputSize}, nil
}

// OutputSize returns the length of hashes produced by b.
func (b *Blake2b) OutputSize() int {
	return b.outputSize
}

func (b *Blake2b) HashLeaf(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return append([]byte(nil), sum[:b.outputSize]...)
}

func (b *Blake2b) HashPair(left, right []byte) []byte {
	// New512 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New512(nil)
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(nil)[:b.outputSize]
}
