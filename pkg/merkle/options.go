package merkle

import "go.uber.org/zap"

// Option configures tree construction.
type Option func(*MerkleTree)

// WithLogger sets the logger used to report tree construction at debug level.
// Trees log nothing by default.
func WithLogger(l *zap.Logger) Option {
	return func(mt *MerkleTree) {
		if l != nil {
			mt.logger = l
		}
	}
}
