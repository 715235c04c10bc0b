package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dream-cipher/internal/app"
)

// revertErrors maps a revert reason, as written by the ledger node, to its
// sentinel.
var revertErrors = []struct {
	reason string
	err    error
}{
	{app.RevertEmptyDreamData, ErrEmptyDreamData},
	{app.RevertDreamDoesNotExist, ErrDreamDoesNotExist},
	{app.RevertInvalidInputProof, ErrInvalidInputProof},
	{app.RevertInsufficientFunds, ErrInsufficientFunds},
	{app.RevertACLNotAllowed, ErrNotAllowed},
	{app.MsgChainMismatch, ErrContractNotServed},
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := extractReason(resp.Body())
	for _, r := range revertErrors {
		if strings.Contains(reason, r.reason) {
			return fmt.Errorf("%w: %s", r.err, reason)
		}
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, reason)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, reason)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, reason)
	default:
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), reason)
	}
}

// extractReason reads the "error" field of a JSON error body. Bodies that
// are not JSON are returned trimmed.
func extractReason(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	return strings.TrimSpace(string(body))
}

// requestError wraps a failure to complete the HTTP exchange. Cancellation
// by the caller is kept distinct from network failures.
func requestError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return fmt.Errorf("%w: %s request: %w", ErrNetwork, op, err)
}
