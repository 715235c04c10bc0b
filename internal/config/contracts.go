package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Known chains.
const (
	ChainIDLocal   uint64 = 31337
	ChainIDSepolia uint64 = 11155111
)

// contractAddresses maps a chain id to the address of the dream ledger
// contract deployed on that chain.
var contractAddresses = map[uint64]common.Address{
	ChainIDLocal:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	ChainIDSepolia: common.HexToAddress("0x96F07ec5a7027050232441Bcca412EF98533ee6F"),
}

// ContractAddress returns the ledger contract deployed on chainID.
func ContractAddress(chainID uint64) (common.Address, error) {
	addr, ok := contractAddresses[chainID]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}

	return addr, nil
}

// ResolveContract returns override when it is a valid address and the table
// entry for chainID otherwise.
func ResolveContract(chainID uint64, override string) (common.Address, error) {
	if override == "" {
		return ContractAddress(chainID)
	}

	if !common.IsHexAddress(override) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidContractAddress, override)
	}

	return common.HexToAddress(override), nil
}
