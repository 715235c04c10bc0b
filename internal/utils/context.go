// Package utils provides general-purpose helpers shared by the ledger node
// and the client: typed context keys, request hashing, JSON responses, the
// HTTP client and session token handling.
package utils

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key the auth middleware stores the authenticated
// account under.
//
//	ctx := context.WithValue(ctx, utils.AccountCtxKey, account)
var AccountCtxKey = contextKey("account")

// GetAccountFromContext retrieves the authenticated account from ctx.
// ok is false when the value is missing, has another type or is the zero
// address.
func GetAccountFromContext(ctx context.Context) (common.Address, bool) {
	account, ok := ctx.Value(AccountCtxKey).(common.Address)
	if !ok || account == (common.Address{}) {
		return common.Address{}, false
	}

	return account, true
}
