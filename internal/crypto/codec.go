// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultSalt is the application-wide PBKDF2 salt.
	DefaultSalt = "drecate-salt"

	// DefaultIterations is the PBKDF2 iteration count.
	DefaultIterations = 100_000

	keyLength = 32
)

// noteCodec is the private implementation of [NoteCodec].
type noteCodec struct {
	salt       []byte
	iterations int
	random     io.Reader
}

// NewNoteCodec constructs a [NoteCodec] with the default salt and
// iteration count.
func NewNoteCodec() NoteCodec {
	return NewNoteCodecWithSalt(DefaultSalt)
}

// NewNoteCodecWithSalt constructs a [NoteCodec] that derives keys with a
// non-default salt. An empty salt falls back to [DefaultSalt].
func NewNoteCodecWithSalt(salt string) NoteCodec {
	if salt == "" {
		salt = DefaultSalt
	}
	return &noteCodec{
		salt:       []byte(salt),
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
}

// DeriveKey implements [NoteCodec]. The seed is trimmed and lower-cased
// first, so checksummed and lower-case spellings of an address derive the
// same key.
func (c *noteCodec) DeriveKey(seed string) []byte {
	return pbkdf2.Key([]byte(normalizeSeed(seed)), c.salt, c.iterations, keyLength, sha256.New)
}

// Encrypt implements [NoteCodec].
func (c *noteCodec) Encrypt(plaintext, seed string) (string, error) {
	gcm, err := c.aead(seed)
	if err != nil {
		return "", err
	}

	// a fresh nonce per call: GCM must never see a repeated nonce under one key
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	payload := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return Envelope{IV: nonce, Payload: payload}.String(), nil
}

// Decrypt implements [NoteCodec].
func (c *noteCodec) Decrypt(envelope, seed string) (string, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	gcm, err := c.aead(seed)
	if err != nil {
		return "", err
	}
	if len(env.Payload) < gcm.Overhead() {
		return "", fmt.Errorf("%w: payload shorter than tag", ErrMalformedEnvelope)
	}

	plaintext, err := gcm.Open(nil, env.IV, env.Payload, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return string(plaintext), nil
}

func (c *noteCodec) aead(seed string) (cipher.AEAD, error) {
	if normalizeSeed(seed) == "" {
		return nil, ErrEmptySeed
	}

	block, err := aes.NewCipher(c.DeriveKey(seed))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	if gcm.NonceSize() != NonceSize {
		return nil, errors.New("unexpected gcm nonce size")
	}

	return gcm, nil
}

func normalizeSeed(seed string) string {
	return strings.ToLower(strings.TrimSpace(seed))
}
