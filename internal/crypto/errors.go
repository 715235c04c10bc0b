// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedEnvelope is returned when the input is not a well-formed
	// "ivHex:cipherHex" envelope: the delimiter is missing, a part is empty
	// or not hex, or the nonce has the wrong length.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify.
	// It means the key is wrong or the ciphertext was tampered with.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrEmptySeed is returned when no key seed is provided.
	ErrEmptySeed = errors.New("empty key seed")
)
