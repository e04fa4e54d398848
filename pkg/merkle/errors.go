package merkle

import "github.com/pkg/errors"

var (
	ErrEmptyInput         = errors.New("cannot build merkle tree from empty leaf list")
	ErrNilHasher          = errors.New("hasher must not be nil")
	ErrIndexOutOfRange    = errors.New("leaf index out of range")
	ErrLeafNotFound       = errors.New("leaf not found in tree")
	ErrMalformedProof     = errors.New("malformed proof")
	ErrInvariantViolation = errors.New("merkle tree invariant violated")
)
