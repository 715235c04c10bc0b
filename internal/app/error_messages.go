// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// ledger node handlers and by the client when it maps ledger responses back
// to typed errors.
//
// Revert* constants are the reasons the ledger writes into the body of a
// rejected call. Clients match on them verbatim, so they are part of the
// wire contract. Msg* constants are generic transport messages.
package app

const (
	// RevertEmptyDreamData is returned when a submission carries an empty
	// encrypted body.
	RevertEmptyDreamData = "Empty dream data"

	// RevertDreamDoesNotExist is returned for reads and increments that
	// target an id that was never allocated.
	RevertDreamDoesNotExist = "Dream does not exist"

	// RevertInvalidInputProof is returned when the confidential runtime
	// rejects the attestation of an encrypted operand.
	RevertInvalidInputProof = "invalid input proof"

	// RevertInvalidHandle is returned when an operand handle is not a
	// 32-byte 0x-hex value.
	RevertInvalidHandle = "invalid ciphertext handle"

	// RevertInsufficientFunds is returned when the caller has exhausted its
	// gas budget on the ledger node.
	RevertInsufficientFunds = "insufficient funds for gas"

	// RevertACLNotAllowed is returned when an account asks to decrypt a
	// handle it has not been granted.
	RevertACLNotAllowed = "sender is not allowed to decrypt handle"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidSignature is returned when a login signature does not
	// recover to the claimed address or its timestamp is out of range.
	MsgInvalidSignature = "invalid login signature"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a session token has expired.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a session token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountProvided is returned when an authenticated handler finds
	// no account in the request context.
	MsgNoAccountProvided = "no account provided"

	// MsgChainMismatch is returned when a relayer request targets a
	// contract the runtime does not serve.
	MsgChainMismatch = "contract is not served by this runtime"
)
