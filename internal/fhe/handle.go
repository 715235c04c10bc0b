package fhe

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Type is the encrypted type tag carried in byte 30 of every handle.
type Type uint8

const (
	TypeBool   Type = 0
	TypeUint32 Type = 4
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "ebool"
	case TypeUint32:
		return "euint32"
	default:
		return "unknown"
	}
}

// HandleVersion is written into the last byte of every handle.
const HandleVersion = 0

const (
	handleTypeIndex    = 30
	handleVersionIndex = 31
)

// TypeOf returns the type tag of handle.
func TypeOf(handle common.Hash) Type {
	return Type(handle[handleTypeIndex])
}

// newHandle hashes parts with keccak256 and stamps the type and version
// bytes into the digest.
func newHandle(typ Type, parts ...[]byte) common.Hash {
	h := crypto.Keccak256Hash(parts...)
	h[handleTypeIndex] = byte(typ)
	h[handleVersionIndex] = HandleVersion
	return h
}

func inputHandle(digest []byte, index int, chainID uint64) common.Hash {
	return newHandle(TypeUint32, digest, []byte{byte(index)}, uint64Bytes(chainID))
}

func uint64Bytes(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

// truncate reduces v to the width of typ.
func truncate(typ Type, v uint64) uint64 {
	switch typ {
	case TypeBool:
		if v != 0 {
			return 1
		}
		return 0
	default:
		return v & 0xFFFFFFFF
	}
}
