package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		wantErr     []string
		wantHasher  string
		wantB2bSize int
	}{
		{name: "Defaults to sha256", cfg: Config{}, wantHasher: hasher.NameSHA256},
		{name: "Normalizes case", cfg: Config{Hasher: " Keccak256 "}, wantHasher: hasher.NameKeccak256},
		{name: "Blake2b default size", cfg: Config{Hasher: "blake2b"}, wantHasher: hasher.NameBlake2b, wantB2bSize: 32},
		{name: "Blake2b explicit size", cfg: Config{Hasher: "blake2b", Blake2bSize: 48}, wantHasher: hasher.NameBlake2b, wantB2bSize: 48},
		{name: "Unknown hasher", cfg: Config{Hasher: "md5"}, wantErr: []string{"hasher", "md5"}},
		{name: "Blake2b size too large", cfg: Config{Hasher: "blake2b", Blake2bSize: 65}, wantErr: []string{"blake2bSize"}},
		{name: "Size without blake2b", cfg: Config{Hasher: "sha256", Blake2bSize: 16}, wantErr: []string{"blake2bSize"}},
		{name: "Both fields invalid", cfg: Config{Hasher: "md5", Blake2bSize: 16}, wantErr: []string{"hasher", "blake2bSize"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			err := cfg.Validate()
			if len(tc.wantErr) > 0 {
				require.Error(t, err)
				for _, want := range tc.wantErr {
					require.Contains(t, err.Error(), want)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantHasher, cfg.Hasher)
			require.Equal(t, tc.wantB2bSize, cfg.Blake2bSize)

			h, err := cfg.NewHasher()
			require.NoError(t, err)
			require.NotNil(t, h)
		})
	}
}

func TestGetSupportedHashersString(t *testing.T) {
	s := GetSupportedHashersString()
	for _, name := range hasher.Names() {
		require.Contains(t, s, name)
	}
}
