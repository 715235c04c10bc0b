// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ethereum/go-ethereum/common"

// EventName identifies the kind of a ledger event.
type EventName string

const (
	// EventDreamSubmitted is emitted once per created note.
	EventDreamSubmitted EventName = "DreamSubmitted"

	// EventInterpretationCountIncremented is emitted once per accepted increment.
	EventInterpretationCountIncremented EventName = "InterpretationCountIncremented"
)

// Event is an entry of the ledger event log.
//
// For DreamSubmitted, Account is the owner and Timestamp the creation time.
// For InterpretationCountIncremented, Account is the interpreter.
type Event struct {
	Seq       uint64         `json:"seq"`
	Name      EventName      `json:"name"`
	NoteID    uint64         `json:"note_id"`
	Account   common.Address `json:"account"`
	Timestamp uint64         `json:"timestamp"`
}

// Receipt is returned for every accepted ledger write.
type Receipt struct {
	// TxHash is a keccak digest identifying the write.
	TxHash common.Hash `json:"tx_hash"`

	// NoteID is the id the write applied to.
	NoteID uint64 `json:"note_id"`

	// Events holds the events emitted by the write.
	Events []Event `json:"events"`
}
