package fhe

import (
	"crypto/sha256"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// maxProofHandles is the largest number of handles one proof can list.
const maxProofHandles = 255

// inputProof is the attestation returned with encrypted inputs:
//
//	numHandles (1 byte) || handles (32 bytes each) || eddsa signature
//
// The signature covers keccak256(contract || user || chainID || handles),
// so a proof only verifies for the pair it was issued to.
type inputProof struct {
	Handles   []common.Hash
	Signature []byte
}

func (p inputProof) bytes() []byte {
	out := make([]byte, 0, 1+len(p.Handles)*common.HashLength+len(p.Signature))
	out = append(out, byte(len(p.Handles)))
	for _, h := range p.Handles {
		out = append(out, h.Bytes()...)
	}
	return append(out, p.Signature...)
}

func parseInputProof(raw []byte) (inputProof, error) {
	if len(raw) < 1 {
		return inputProof{}, fmt.Errorf("%w: empty proof", ErrInvalidProof)
	}

	n := int(raw[0])
	end := 1 + n*common.HashLength
	if n == 0 || len(raw) <= end {
		return inputProof{}, fmt.Errorf("%w: truncated proof", ErrInvalidProof)
	}

	p := inputProof{Handles: make([]common.Hash, n)}
	for i := range n {
		p.Handles[i] = common.BytesToHash(raw[1+i*common.HashLength : 1+(i+1)*common.HashLength])
	}
	p.Signature = raw[end:]
	return p, nil
}

func (p inputProof) contains(handle common.Hash) bool {
	for _, h := range p.Handles {
		if h == handle {
			return true
		}
	}
	return false
}

// attestedMessage is the digest signed for an input proof.
func attestedMessage(contract, user common.Address, chainID uint64, handles []common.Hash) []byte {
	parts := make([][]byte, 0, 3+len(handles))
	parts = append(parts, contract.Bytes(), user.Bytes(), uint64Bytes(chainID))
	for _, h := range handles {
		parts = append(parts, h.Bytes())
	}
	return crypto.Keccak256(parts...)
}

// signer attests input proofs with an EdDSA key on the BN254 twisted
// Edwards curve.
type signer struct {
	key *eddsa.PrivateKey
}

func (s signer) sign(msg []byte) ([]byte, error) {
	sig, err := s.key.Sign(msg, sha256.New())
	if err != nil {
		return nil, fmt.Errorf("error signing input proof: %w", err)
	}
	return sig, nil
}

func (s signer) verify(sig, msg []byte) bool {
	ok, err := s.key.PublicKey.Verify(sig, msg, sha256.New())
	return err == nil && ok
}

func (s signer) publicKey() []byte {
	return s.key.PublicKey.Bytes()
}
