package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

// Environment variable names for the merkle CLI
const (
	EnvMerkleHasher      = "MERKLE_HASHER"
	EnvMerkleBlake2bSize = "MERKLE_BLAKE2B_SIZE"
	EnvMerkleABIEncode   = "MERKLE_ABI_ENCODE"
	EnvMerkleVerbose     = "MERKLE_VERBOSE"
)

// Config selects how leaves are encoded and hashed.
type Config struct {
	// Hasher is one of hasher.Names()
	Hasher string `json:"hasher" yaml:"hasher"`

	// Blake2bSize is the output size in bytes, only used with the blake2b hasher
	Blake2bSize int `json:"blake2b_size" yaml:"blake2bSize"`

	// ABIEncode ABI-encodes each text item before hashing
	ABIEncode bool `json:"abi_encode" yaml:"abiEncode"`

	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Validate normalizes the configuration and reports every invalid field at once.
func (c *Config) Validate() error {
	c.Hasher = strings.ToLower(strings.TrimSpace(c.Hasher))
	if c.Hasher == "" {
		c.Hasher = hasher.NameSHA256
	}

	var allErrors field.ErrorList
	if !slices.Contains(hasher.Names(), c.Hasher) {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("hasher"), c.Hasher, hasher.Names()))
	}

	if c.Hasher == hasher.NameBlake2b {
		if c.Blake2bSize == 0 {
			c.Blake2bSize = hasher.DefaultBlake2bSize
		}
		if c.Blake2bSize < 1 || c.Blake2bSize > blake2b.Size {
			allErrors = append(allErrors, field.Invalid(field.NewPath("blake2bSize"), c.Blake2bSize,
				fmt.Sprintf("must be between 1 and %d", blake2b.Size)))
		}
	} else if c.Blake2bSize != 0 {
		allErrors = append(allErrors, field.Forbidden(field.NewPath("blake2bSize"),
			fmt.Sprintf("only applies to the %s hasher", hasher.NameBlake2b)))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// NewHasher returns the hasher the configuration selects. Call Validate first.
func (c *Config) NewHasher() (hasher.Hasher, error) {
	return hasher.ByName(c.Hasher, c.Blake2bSize)
}

// GetSupportedHashersString returns supported hasher names for CLI help
func GetSupportedHashersString() string {
	return strings.Join(hasher.Names(), ", ")
}
