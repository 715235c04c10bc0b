package service

import "fmt"

// Category classifies a client operation failure. Each category has its own
// user-facing message.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryValidation
	CategoryAuthentication
	CategoryAuthorization
	CategoryNotFound
	CategoryRuntimeNotReady
	CategoryProofRejected
	CategoryTransport
	CategoryCancellation
	CategoryInsufficientResources
)

var categoryNames = map[Category]string{
	CategoryUnknown:               "unknown",
	CategoryValidation:            "validation",
	CategoryAuthentication:        "authentication",
	CategoryAuthorization:         "authorization",
	CategoryNotFound:              "not-found",
	CategoryRuntimeNotReady:       "runtime-not-ready",
	CategoryProofRejected:         "proof-rejected",
	CategoryTransport:             "transport",
	CategoryCancellation:          "cancellation",
	CategoryInsufficientResources: "insufficient-resources",
}

var categoryMessages = map[Category]string{
	CategoryUnknown:               "Something went wrong.",
	CategoryValidation:            "Please check what you entered.",
	CategoryAuthentication:        "The dream could not be decrypted with this wallet. The data may have been tampered with.",
	CategoryAuthorization:         "Only the owner of a dream can read it.",
	CategoryNotFound:              "This dream does not exist.",
	CategoryRuntimeNotReady:       "The encryption service is still starting. Try again in a moment.",
	CategoryProofRejected:         "The ledger rejected the encrypted value.",
	CategoryTransport:             "Network error. Check your connection and try again.",
	CategoryCancellation:          "Transaction cancelled.",
	CategoryInsufficientResources: "Insufficient funds for gas.",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Message is the text shown to the user for c.
func (c Category) Message() string {
	if msg, ok := categoryMessages[c]; ok {
		return msg
	}
	return categoryMessages[CategoryUnknown]
}

// OperationError is returned by the client services. It names the operation,
// the step that failed and the category of the failure.
type OperationError struct {
	Op       string
	Step     string
	Category Category
	Err      error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s failed (%s): %v", e.Op, e.Step, e.Category, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// newOperationError tags err with op and step. Its category is inferred
// from err.
func newOperationError(op, step string, err error) *OperationError {
	return &OperationError{Op: op, Step: step, Category: categorize(err), Err: err}
}
