package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-proof-go/pkg/config"
	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
	"github.com/Layr-Labs/merkle-proof-go/pkg/logger"
	"github.com/Layr-Labs/merkle-proof-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-proof-go/pkg/util"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "merkle",
		Usage: "Build merkle trees and create or check inclusion proofs",
		Description: `Builds a binary merkle tree over text items and prints its root.

Leaf counts that are not a power of two are padded by repeating the last leaf hash.
Proofs are printed as JSON with 0x-prefixed hex hashes and left/right directions.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "hasher",
				Usage:   fmt.Sprintf("Hash function: %s", config.GetSupportedHashersString()),
				Value:   hasher.NameSHA256,
				EnvVars: []string{config.EnvMerkleHasher},
			},
			&cli.IntFlag{
				Name:    "blake2b-size",
				Usage:   "Output size in bytes for the blake2b hasher (1-64)",
				EnvVars: []string{config.EnvMerkleBlake2bSize},
			},
			&cli.BoolFlag{
				Name:    "abi-encode",
				Usage:   "ABI-encode each item as a Solidity string before hashing",
				EnvVars: []string{config.EnvMerkleABIEncode},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvMerkleVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "root",
				Usage:     "Print the merkle root of the given items",
				ArgsUsage: "<item>...",
				Action:    runRoot,
			},
			{
				Name:      "prove",
				Usage:     "Print an inclusion proof for the item at --index",
				ArgsUsage: "<item>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Zero-based leaf index (padding leaves included)",
						Required: true,
					},
				},
				Action: runProve,
			},
			{
				Name:  "verify",
				Usage: "Check a JSON proof against a root",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Usage:    "Expected merkle root (0x-prefixed hex)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "proof",
						Usage: "Path to the JSON proof, or - for stdin",
						Value: "-",
					},
					&cli.StringFlag{
						Name:  "item",
						Usage: "Optional raw item; when set it must hash to the proof's leaf",
					},
				},
				Action: runVerify,
			},
			{
				Name:   "demo",
				Usage:  "Build a small example tree and walk through proving and verifying",
				Action: runDemo,
			},
		},
	}
}

// session is the per-invocation state shared by every command.
type session struct {
	cfg    *config.Config
	hasher hasher.Hasher
	logger *zap.Logger
	out    io.Writer
}

func newSession(c *cli.Context) (*session, error) {
	cfg := &config.Config{
		Hasher:      c.String("hasher"),
		Blake2bSize: c.Int("blake2b-size"),
		ABIEncode:   c.Bool("abi-encode"),
		Verbose:     c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	h, err := cfg.NewHasher()
	if err != nil {
		return nil, fmt.Errorf("failed to create hasher: %w", err)
	}

	l.Sugar().Debugw("Using configuration", "hasher", cfg.Hasher, "blake2b_size", cfg.Blake2bSize, "abi_encode", cfg.ABIEncode)

	return &session{cfg: cfg, hasher: h, logger: l, out: c.App.Writer}, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Verbose})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l, nil
}

func (s *session) leaves(items []string) ([][]byte, error) {
	if s.cfg.ABIEncode {
		return util.EncodeStringLeaves(items)
	}
	return util.StringsToLeaves(items), nil
}

func (s *session) buildTree(items []string) (*merkle.MerkleTree, error) {
	leaves, err := s.leaves(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}
	tree, err := merkle.NewTree(leaves, s.hasher, merkle.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}
	return tree, nil
}

func runRoot(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	tree, err := s.buildTree(c.Args().Slice())
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, hexutil.Encode(tree.Root()))
	return nil
}

func runProve(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	tree, err := s.buildTree(c.Args().Slice())
	if err != nil {
		return err
	}

	proof, err := tree.GenerateProof(c.Int("index"))
	if err != nil {
		return fmt.Errorf("failed to generate proof: %w", err)
	}

	s.logger.Sugar().Infow("Generated proof",
		"index", proof.LeafIndex,
		"path_length", len(proof.Path),
		"root", hexutil.Encode(tree.Root()),
	)

	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(proof)
}

func runVerify(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	root, err := hexutil.Decode(c.String("root"))
	if err != nil {
		return fmt.Errorf("invalid root: %w", err)
	}

	data, err := readProof(c, c.String("proof"))
	if err != nil {
		return err
	}

	var proof merkle.MerkleProof
	if err := json.Unmarshal(data, &proof); err != nil {
		return fmt.Errorf("failed to decode proof: %w", err)
	}

	var valid bool
	if c.IsSet("item") {
		leaves, err := s.leaves([]string{c.String("item")})
		if err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
		valid = merkle.VerifyLeaf(s.hasher, leaves[0], &proof, root)
	} else {
		valid = proof.Verify(s.hasher, root)
	}

	s.logger.Sugar().Debugw("Verified proof",
		"index", proof.LeafIndex,
		"calculated_root", hexutil.Encode(proof.CalculateRoot(s.hasher)),
		"valid", valid,
	)

	fmt.Fprintf(s.out, "Proof is valid: %v\n", valid)
	if !valid {
		return fmt.Errorf("proof does not verify against root %s", hexutil.Encode(root))
	}
	return nil
}

func readProof(c *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read proof from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof file: %w", err)
	}
	return data, nil
}

func runDemo(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	tree, err := s.buildTree([]string{"Create", "a", "tree", "from", "strings"})
	if err != nil {
		return err
	}

	root := tree.Root()
	fmt.Fprintf(s.out, "Merkle Root: %s\n", hexutil.Encode(root))

	proof, err := tree.GenerateProof(1)
	if err != nil {
		return fmt.Errorf("failed to generate proof: %w", err)
	}

	fmt.Fprintf(s.out, "Proof is valid: %v\n", tree.VerifyProof(proof))
	fmt.Fprintf(s.out, "Calculated Root: %s\n", hexutil.Encode(proof.CalculateRoot(s.hasher)))
	fmt.Fprintf(s.out, "Proof verifies against root: %v\n", proof.Verify(s.hasher, root))
	return nil
}
