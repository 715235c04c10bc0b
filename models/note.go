// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Note is a confidential record held by the ledger.
//
// The ledger never interprets EncryptedBody: it is the UTF-8 form of the
// "ivHex:cipherHex" envelope produced on the client. InterpretationCount is a
// handle into the confidential runtime and is only ever changed by
// homomorphic addition.
type Note struct {
	// ID is assigned by the ledger in call order, starting at 0.
	ID uint64 `json:"id"`

	// Owner is the account that submitted the note. Immutable.
	Owner common.Address `json:"owner"`

	// CreatedAt is the unix time (seconds) at which the note was recorded.
	CreatedAt uint64 `json:"created_at"`

	// EncryptedBody is stored verbatim and is never empty.
	EncryptedBody hexutil.Bytes `json:"encrypted_body"`

	// InterpretationCount is the encrypted counter handle.
	InterpretationCount common.Hash `json:"interpretation_count"`
}

// Meta returns the public metadata of the note.
func (n Note) Meta() NoteMeta {
	return NoteMeta{Owner: n.Owner, CreatedAt: n.CreatedAt}
}

// NoteMeta is the (owner, createdAt) pair exposed by the ledger.
type NoteMeta struct {
	Owner     common.Address `json:"owner"`
	CreatedAt uint64         `json:"created_at"`
}

// NoteDraft is the plaintext a user asks to submit.
type NoteDraft struct {
	Text string
}

// Interpretation is the outcome of reading one's own note: the recovered
// plaintext and the receipt of the counter increment that recorded it.
type Interpretation struct {
	ID      uint64
	Text    string
	Receipt Receipt
}
