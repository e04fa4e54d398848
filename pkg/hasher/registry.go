package hasher

import (
	"github.com/pkg/errors"
	"github.com/wealdtech/go-merkletree/v2/sha3"
)

var (
	ErrUnknownHasher     = errors.New("unknown hasher")
	ErrInvalidOutputSize = errors.New("invalid output size")
)

const (
	NameSHA256    = "sha256"
	NameBlake2b   = "blake2b"
	NameKeccak256 = "keccak256"
	NameBlake3    = "blake3"
	NameMiMC      = "mimc"
	NameSHA3      = "sha3"
)

// DefaultBlake2bSize matches the SHA-256 output length.
const DefaultBlake2bSize = 32

// Names returns every name accepted by ByName.
func Names() []string {
	return []string{NameSHA256, NameBlake2b, NameKeccak256, NameBlake3, NameMiMC, NameSHA3}
}

// ByName resolves a hasher from its configuration name. size is only used by
// blake2b; zero selects DefaultBlake2bSize.
func ByName(name string, size int) (Hasher, error) {
	switch name {
	case NameSHA256, "":
		return NewSHA256(), nil
	case NameBlake2b:
		if size == 0 {
			size = DefaultBlake2bSize
		}
		h, err := NewBlake2b(size)
		if err != nil {
			return nil, err
		}
		return h, nil
	case NameKeccak256:
		return NewKeccak256(), nil
	case NameBlake3:
		return NewBlake3(), nil
	case NameMiMC:
		return NewMiMC(), nil
	case NameSHA3:
		return FromHashType(sha3.New256()), nil
	default:
		return nil, errors.Wrapf(ErrUnknownHasher, "%q", name)
	}
}
