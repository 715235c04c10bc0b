// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TokenPreviewLength is the number of characters of the 0x-hex body shown
// as a note's token preview.
const TokenPreviewLength = 66

// FilterMode selects which notes of a snapshot are presented.
type FilterMode int

const (
	// FilterAll shows every note.
	FilterAll FilterMode = iota
	// FilterMine shows only the viewer's notes.
	FilterMine
)

// String implements fmt.Stringer.
func (f FilterMode) String() string {
	if f == FilterMine {
		return "mine"
	}
	return "all"
}

// NoteView is the client-side projection of a note.
type NoteView struct {
	ID            uint64
	Owner         common.Address
	CreatedAt     time.Time
	EncryptedBody hexutil.Bytes
	CountHandle   common.Hash

	// InterpretationCount is set only when the viewer owns the note and the
	// confidential session could decrypt the counter.
	InterpretationCount *uint64
}

// Token returns the full 0x-hex encoding of the encrypted body.
func (v NoteView) Token() string {
	return hexutil.Encode(v.EncryptedBody)
}

// TokenPreview returns the first TokenPreviewLength characters of Token.
func (v NoteView) TokenPreview() string {
	token := v.Token()
	if len(token) <= TokenPreviewLength {
		return token
	}
	return token[:TokenPreviewLength]
}

// NoteResult is the outcome of fetching one note during a refresh.
type NoteResult struct {
	ID   uint64
	Note NoteView
	Err  error
}

// Snapshot is a non-authoritative view of the ledger built in one refresh.
type Snapshot struct {
	// Notes holds successfully fetched notes ordered by id.
	Notes []NoteView

	// ByOwner maps an owner to its note ids in submission order.
	ByOwner map[common.Address][]uint64

	// Failed holds per-note failures skipped by the refresh.
	Failed []NoteResult

	// Total is the ledger note count observed at refresh time.
	Total uint64

	RefreshedAt time.Time
}

// Filter returns the notes selected by mode for viewer, preserving id order.
func (s Snapshot) Filter(mode FilterMode, viewer common.Address) []NoteView {
	if mode == FilterAll {
		out := make([]NoteView, len(s.Notes))
		copy(out, s.Notes)
		return out
	}

	mine := make(map[uint64]struct{}, len(s.ByOwner[viewer]))
	for _, id := range s.ByOwner[viewer] {
		mine[id] = struct{}{}
	}

	out := make([]NoteView, 0, len(mine))
	for _, n := range s.Notes {
		if _, ok := mine[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the note with the given id.
func (s Snapshot) Find(id uint64) (NoteView, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return NoteView{}, false
}
