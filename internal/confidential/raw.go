package confidential

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RawValue is a handle or proof as returned by a runtime backend: either a
// hex string or a byte buffer. Exactly one of the two is meaningful.
type RawValue struct {
	str     string
	bytes   []byte
	isBytes bool
}

// StringValue wraps a hex string, with or without 0x prefix.
func StringValue(s string) RawValue {
	return RawValue{str: s}
}

// BytesValue wraps a raw byte buffer.
func BytesValue(b []byte) RawValue {
	return RawValue{bytes: b, isBytes: true}
}

// IsBytes reports whether v holds a byte buffer.
func (v RawValue) IsBytes() bool {
	return v.isBytes
}

// RawInput is the output of encrypting an input: one handle per added value
// and a single proof.
type RawInput struct {
	Handles    []RawValue
	InputProof RawValue
}

// Normalize converts v into canonical 0x-prefixed lower-case hex. It is the
// only place that inspects which variant a RawValue holds.
func Normalize(v RawValue) (string, error) {
	if v.isBytes {
		if len(v.bytes) == 0 {
			return "", ErrEmptyValue
		}
		return hexutil.Encode(v.bytes), nil
	}

	s := strings.TrimSpace(v.str)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if s == "" {
		return "", ErrEmptyValue
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	return "0x" + strings.ToLower(s), nil
}
