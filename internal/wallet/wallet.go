// Package wallet holds the client's account identity: the secp256k1 key,
// its address and the chain the account is connected to. The address is the
// seed of the note codec; the key only ever signs login messages.
package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dream-cipher/models"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// LoginWindow bounds the age of a login timestamp in both directions.
const LoginWindow = 5 * time.Minute

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrLoginExpired      = errors.New("login timestamp out of range")
)

// Wallet is an account connected to a chain. It is read-only once built.
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID uint64
}

// New loads the account from a hex private key (with or without 0x). An
// empty key generates an ephemeral account.
func New(privateKeyHex string, chainID uint64) (*Wallet, error) {
	var (
		key *ecdsa.PrivateKey
		err error
	)

	if privateKeyHex == "" {
		key, err = crypto.GenerateKey()
	} else {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	return &Wallet{key: key, address: crypto.PubkeyToAddress(key.PublicKey), chainID: chainID}, nil
}

// Address returns the account address.
func (w *Wallet) Address() common.Address {
	return w.address
}

// ChainID returns the connected chain.
func (w *Wallet) ChainID() uint64 {
	return w.chainID
}

// Seed returns the codec seed of the account.
func (w *Wallet) Seed() string {
	return strings.ToLower(w.address.Hex())
}

// SignMessage signs msg as an EIP-191 personal message. V is 27 or 28.
func (w *Wallet) SignMessage(msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), w.key)
	if err != nil {
		return nil, fmt.Errorf("error signing message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return sig, nil
}

// SignLogin builds a login request for the ledger node at ts.
func (w *Wallet) SignLogin(ts time.Time) (models.LoginRequest, error) {
	sig, err := w.SignMessage([]byte(LoginMessage(w.address, ts.Unix())))
	if err != nil {
		return models.LoginRequest{}, err
	}

	return models.LoginRequest{
		Address:   w.address.Hex(),
		Timestamp: ts.Unix(),
		Signature: hexutil.Encode(sig),
	}, nil
}

// LoginMessage is the text an account signs to obtain a session token.
func LoginMessage(account common.Address, timestamp int64) string {
	return fmt.Sprintf("Sign in to the dream ledger\naccount: %s\ntimestamp: %d", account.Hex(), timestamp)
}

// RecoverSigner returns the account that produced the EIP-191 signature sig
// over msg.
func RecoverSigner(msg, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(sig))
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(msg), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}

// VerifyLogin checks that req is signed by req.Address and that its
// timestamp lies within LoginWindow of now.
func VerifyLogin(req models.LoginRequest, now time.Time) (common.Address, error) {
	if !common.IsHexAddress(req.Address) {
		return common.Address{}, fmt.Errorf("%w: bad address", ErrInvalidSignature)
	}
	claimed := common.HexToAddress(req.Address)

	ts := time.Unix(req.Timestamp, 0)
	if ts.Before(now.Add(-LoginWindow)) || ts.After(now.Add(LoginWindow)) {
		return common.Address{}, ErrLoginExpired
	}

	sig, err := hexutil.Decode(req.Signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	signer, err := RecoverSigner([]byte(LoginMessage(claimed, req.Timestamp)), sig)
	if err != nil {
		return common.Address{}, err
	}
	if signer != claimed {
		return common.Address{}, fmt.Errorf("%w: signer mismatch", ErrInvalidSignature)
	}

	return claimed, nil
}
