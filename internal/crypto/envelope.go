package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	envelopeDelimiter = ":"
)

// Envelope is the (iv, payload) pair produced by symmetric encryption.
// Payload is the GCM ciphertext with the authentication tag appended.
type Envelope struct {
	IV      []byte
	Payload []byte
}

// String renders the envelope as "ivHex:payloadHex".
func (e Envelope) String() string {
	return hex.EncodeToString(e.IV) + envelopeDelimiter + hex.EncodeToString(e.Payload)
}

// ParseEnvelope parses "ivHex:payloadHex". Every failure wraps
// ErrMalformedEnvelope.
func ParseEnvelope(s string) (Envelope, error) {
	ivHex, payloadHex, found := strings.Cut(s, envelopeDelimiter)
	if !found {
		return Envelope{}, fmt.Errorf("%w: missing %q delimiter", ErrMalformedEnvelope, envelopeDelimiter)
	}
	if ivHex == "" || payloadHex == "" {
		return Envelope{}, fmt.Errorf("%w: empty part", ErrMalformedEnvelope)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: iv: %w", ErrMalformedEnvelope, err)
	}
	if len(iv) != NonceSize {
		return Envelope{}, fmt.Errorf("%w: iv length %d, want %d", ErrMalformedEnvelope, len(iv), NonceSize)
	}

	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: payload: %w", ErrMalformedEnvelope, err)
	}

	return Envelope{IV: iv, Payload: payload}, nil
}
