// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// EncryptedOperand is an encrypted integer accepted by the ledger together
// with the attestation produced by the confidential runtime.
//
// Both fields are canonical 0x-prefixed lower-case hex strings; this is the
// only shape the ledger transport accepts.
type EncryptedOperand struct {
	// Handle references a 32-byte ciphertext registered for a specific
	// (contract, account) pair.
	Handle string `json:"handle"`

	// Proof is the variable-length input proof.
	Proof string `json:"proof"`
}

// Ciphertext is a value registered with the development confidential
// runtime. Value is kept in the clear because that runtime only simulates
// the encrypted domain.
type Ciphertext struct {
	Handle common.Hash `json:"handle"`
	Type   uint8       `json:"type"`
	Value  uint64      `json:"value"`
}

// RuntimeMetadata describes the confidential runtime a relayer is attached to.
type RuntimeMetadata struct {
	// ChainID identifies the chain context of the runtime.
	ChainID uint64 `json:"chain_id"`

	// Contract is the note ledger address served by this runtime.
	Contract common.Address `json:"contract"`

	// VerifyingKey is the 0x-hex public key input proofs are checked against.
	VerifyingKey string `json:"verifying_key"`
}
