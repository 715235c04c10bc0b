// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SubmitRequest is the body of POST /api/notes.
type SubmitRequest struct {
	// EncryptedBody is the 0x-hex encoding of the envelope bytes.
	EncryptedBody string `json:"encrypted_body"`

	// Operand is the encrypted initial counter.
	Operand EncryptedOperand `json:"operand"`
}

// IncrementRequest is the body of POST /api/notes/{id}/interpretations.
type IncrementRequest struct {
	Operand EncryptedOperand `json:"operand"`
}

// LoginRequest proves control of an account by signing a timestamped
// message with the account key.
type LoginRequest struct {
	Address   string `json:"address"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// InputRequest asks the relayer to encrypt values for (Contract, User).
type InputRequest struct {
	Contract string   `json:"contract"`
	User     string   `json:"user"`
	Values   []uint32 `json:"values"`
}

// DecryptRequest asks the relayer to decrypt a handle for the
// authenticated account.
type DecryptRequest struct {
	Handle   string `json:"handle"`
	Contract string `json:"contract"`
}
