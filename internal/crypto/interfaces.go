package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/note_codec_mock.go -package=mock

// NoteCodec performs the client-side symmetric cryptography for note text.
//
// The key is derived from the account identity on every call and never
// leaves the codec: it is not cached, stored or transmitted.
//
// Scheme:
//
//	key      = PBKDF2-SHA256(seed, salt, 100000 iterations, 32 bytes)
//	envelope = hex(iv) ":" hex(AES-256-GCM(key, iv, plaintext))
type NoteCodec interface {
	// DeriveKey returns the 256-bit key for seed. The same seed always
	// yields the same key.
	DeriveKey(seed string) []byte

	// Encrypt encrypts plaintext under the key derived from seed using a
	// fresh random nonce and returns the envelope string.
	Encrypt(plaintext, seed string) (string, error)

	// Decrypt opens an envelope produced by Encrypt. It returns
	// ErrMalformedEnvelope when the input is not an envelope and
	// ErrAuthenticationFailed when the tag does not verify under seed.
	Decrypt(envelope, seed string) (string, error)
}
