package models

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT issued to a wallet account.
//
// The "sub" claim holds the 0x-hex account address. Account is a parsed
// copy of that claim, populated when the token is issued or validated.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Account is the authenticated address taken from the "sub" claim.
	Account common.Address `json:"-"`
}

// GetAccount parses the "sub" claim as an account address.
func (t *Token) GetAccount() (common.Address, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return common.Address{}, fmt.Errorf("error extracting account from token: %w", err)
	}
	if !common.IsHexAddress(subject) {
		return common.Address{}, errors.New("token subject is not an account address")
	}

	return common.HexToAddress(subject), nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
