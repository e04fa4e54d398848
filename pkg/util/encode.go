package util

import "github.com/ethereum/go-ethereum/accounts/abi"

func EncodeString(str string) ([]byte, error) {
	// Define the ABI for a single string parameter
	stringType, _ := abi.NewType("string", "", nil)
	arguments := abi.Arguments{{Type: stringType}}

	// Encode the string
	encoded, err := arguments.Pack(str)
	if err != nil {
		return nil, err
	}

	return encoded, nil
}

// EncodeStringLeaves ABI-encodes each item, producing leaves that hash the same
// way keccak256(abi.encode(item)) does on chain.
func EncodeStringLeaves(items []string) ([][]byte, error) {
	leaves := make([][]byte, len(items))
	for i, item := range items {
		encoded, err := EncodeString(item)
		if err != nil {
			return nil, err
		}
		leaves[i] = encoded
	}
	return leaves, nil
}
