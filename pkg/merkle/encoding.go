package merkle

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const (
	directionLeft  = "left"
	directionRight = "right"
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return directionLeft
	case SideRight:
		return directionRight
	default:
		return "unknown"
	}
}

func (s Side) MarshalText() ([]byte, error) {
	switch s {
	case SideLeft, SideRight:
		return []byte(s.String()), nil
	default:
		return nil, errors.Wrapf(ErrMalformedProof, "invalid side %d", uint8(s))
	}
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case directionLeft:
		*s = SideLeft
	case directionRight:
		*s = SideRight
	default:
		return errors.Wrapf(ErrMalformedProof, "invalid direction %q", string(text))
	}
	return nil
}

// hexBytes encodes as 0x-prefixed hex and decodes hex with or without the prefix.
type hexBytes []byte

func (b hexBytes) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b).MarshalText()
}

func (b *hexBytes) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	decoded, err := hexutil.Decode(s)
	if err != nil {
		return errors.Wrapf(ErrMalformedProof, "invalid hex %q: %v", string(text), err)
	}
	*b = decoded
	return nil
}

// proofJSON is the human-readable form of a proof. Hashes are written as
// 0x-prefixed hex; the prefix is optional when reading.
type proofJSON struct {
	LeafIndex int             `json:"leafIndex"`
	Leaf      hexBytes        `json:"leaf"`
	Path      []proofNodeJSON `json:"path"`
}

type proofNodeJSON struct {
	Hash      hexBytes `json:"hash"`
	Direction *Side    `json:"direction"`
}

func (p *MerkleProof) MarshalJSON() ([]byte, error) {
	out := proofJSON{
		LeafIndex: p.LeafIndex,
		Leaf:      p.Leaf,
		Path:      make([]proofNodeJSON, len(p.Path)),
	}
	for i, node := range p.Path {
		side := node.Side
		out.Path[i] = proofNodeJSON{Hash: node.Hash, Direction: &side}
	}
	return json.Marshal(out)
}

func (p *MerkleProof) UnmarshalJSON(data []byte) error {
	var in proofJSON
	if err := json.Unmarshal(data, &in); err != nil {
		if errors.Is(err, ErrMalformedProof) {
			return err
		}
		return errors.Wrapf(ErrMalformedProof, "%v", err)
	}
	if in.LeafIndex < 0 {
		return errors.Wrapf(ErrMalformedProof, "negative leaf index %d", in.LeafIndex)
	}
	if len(in.Leaf) == 0 {
		return errors.Wrap(ErrMalformedProof, "missing leaf hash")
	}

	path := make([]ProofNode, len(in.Path))
	for i, node := range in.Path {
		if len(node.Hash) == 0 {
			return errors.Wrapf(ErrMalformedProof, "missing hash at path entry %d", i)
		}
		if node.Direction == nil {
			return errors.Wrapf(ErrMalformedProof, "missing direction at path entry %d", i)
		}
		path[i] = ProofNode{Hash: node.Hash, Side: *node.Direction}
	}

	*p = MerkleProof{
		LeafIndex: in.LeafIndex,
		Leaf:      in.Leaf,
		Path:      path,
	}
	return nil
}
