package hasher

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/mimc"
)

// mimcChunkSize keeps every chunk strictly below the BLS12-381 scalar modulus,
// so no two chunks reduce to the same field element.
const mimcChunkSize = fr.Bytes - 1

// MiMC hashes with the MiMC permutation over the BLS12-381 scalar field.
// Input bytes are length-prefixed and split into 31-byte big-endian chunks, each
// absorbed as one field element. Output hashes are 32-byte canonical field
// elements, which makes trees built with MiMC cheap to verify inside a circuit.
type MiMC struct{}

func NewMiMC() MiMC {
	return MiMC{}
}

func (MiMC) HashLeaf(data []byte) []byte {
	h := mimc.NewMiMC()
	absorb(h, data)
	return h.Sum(nil)
}

func (MiMC) HashPair(left, right []byte) []byte {
	h := mimc.NewMiMC()
	absorb(h, left)
	absorb(h, right)
	return h.Sum(nil)
}

func absorb(h hash.Hash, data []byte) {
	var e fr.Element
	e.SetUint64(uint64(len(data)))
	writeElement(h, &e)

	for start := 0; start < len(data); start += mimcChunkSize {
		end := min(start+mimcChunkSize, len(data))
		e.SetBytes(data[start:end])
		writeElement(h, &e)
	}
}

// writeElement cannot fail: canonical elements are always accepted.
func writeElement(h hash.Hash, e *fr.Element) {
	b := e.Bytes()
	_, _ = h.Write(b[:])
}
