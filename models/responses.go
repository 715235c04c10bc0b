package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CountResponse carries the result of the count reads.
type CountResponse struct {
	Count uint64 `json:"count"`
}

// IDsResponse carries ids in submission order.
type IDsResponse struct {
	IDs []uint64 `json:"ids"`
}

// DataResponse carries a stored encrypted body.
type DataResponse struct {
	Data hexutil.Bytes `json:"data"`
}

// HandleResponse carries an encrypted counter handle.
type HandleResponse struct {
	Handle common.Hash `json:"handle"`
}

// EventsResponse carries a page of the event log.
type EventsResponse struct {
	Events []Event `json:"events"`
}

// DecryptResponse carries a clear value returned by user decryption.
type DecryptResponse struct {
	Value uint64 `json:"value"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Address string `json:"address"`
	Token   string `json:"token"`
}

// InputResponse carries encrypted input handles and their proof as 0x-hex.
type InputResponse struct {
	Handles    []string `json:"handles"`
	InputProof string   `json:"input_proof"`
}
