package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldText targets the plaintext of a note draft.
	FieldText = "text"

	// FieldEncryptedBody targets the hex-encoded envelope of a submission.
	FieldEncryptedBody = "encrypted_body"

	// FieldOperand targets the encrypted operand of a submission or increment.
	FieldOperand = "operand"

	// FieldHandle targets the ciphertext handle of an operand or decrypt request.
	FieldHandle = "handle"

	// FieldProof targets the input proof of an operand.
	FieldProof = "proof"

	// FieldContract targets a contract address.
	FieldContract = "contract"

	// FieldUser targets the user address of an input request.
	FieldUser = "user"

	// FieldValues targets the clear values of an input request.
	FieldValues = "values"

	// FieldAddress targets the account address of a login request.
	FieldAddress = "address"

	// FieldSignature targets the signature of a login request.
	FieldSignature = "signature"

	// FieldTimestamp targets the timestamp of a login request.
	FieldTimestamp = "timestamp"
)

const (
	// MaxNoteLength is the largest note, in characters, a user may submit.
	MaxNoteLength = 5000

	// MaxInputValues bounds the values of one encrypted input.
	MaxInputValues = 255

	signatureLength = 65
)

// NoteValidator implements [Validator] for note drafts and every request
// the ledger node accepts.
type NoteValidator struct{}

// NewNoteValidator constructs a NoteValidator.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted:
//   - models.NoteDraft
//   - models.SubmitRequest
//   - models.IncrementRequest
//   - models.EncryptedOperand
//   - models.InputRequest
//   - models.DecryptRequest
//   - models.LoginRequest
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(*value, fields...)

	case models.SubmitRequest:
		return v.validateSubmit(ctx, value, fields...)
	case *models.SubmitRequest:
		return v.validateSubmit(ctx, *value, fields...)

	case models.IncrementRequest:
		return v.validateOperand(value.Operand)
	case *models.IncrementRequest:
		return v.validateOperand(value.Operand)

	case models.EncryptedOperand:
		return v.validateOperand(value, fields...)
	case *models.EncryptedOperand:
		return v.validateOperand(*value, fields...)

	case models.InputRequest:
		return v.validateInput(value, fields...)
	case *models.InputRequest:
		return v.validateInput(*value, fields...)

	case models.DecryptRequest:
		return v.validateDecrypt(value, fields...)
	case *models.DecryptRequest:
		return v.validateDecrypt(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			text := strings.TrimSpace(draft.Text)
			if text == "" {
				return ErrEmptyNote
			}
			if utf8.RuneCountInString(draft.Text) > MaxNoteLength {
				return fmt.Errorf("%w: limit is %d characters", ErrNoteTooLong, MaxNoteLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateSubmit(ctx context.Context, request models.SubmitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEncryptedBody, FieldOperand}
	}

	for _, f := range fields {
		switch f {
		case FieldEncryptedBody:
			if request.EncryptedBody == "" || request.EncryptedBody == "0x" {
				return ErrEmptyBody
			}
			if !isCanonicalHex(request.EncryptedBody) {
				return ErrInvalidBody
			}
		case FieldOperand:
			if err := v.Validate(ctx, request.Operand); err != nil {
				return fmt.Errorf("operand: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateOperand(operand models.EncryptedOperand, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle, FieldProof}
	}

	for _, f := range fields {
		switch f {
		case FieldHandle:
			if !isHandle(operand.Handle) {
				return ErrInvalidHandle
			}
		case FieldProof:
			if !isCanonicalHex(operand.Proof) {
				return ErrInvalidProof
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateInput(request models.InputRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContract, FieldUser, FieldValues}
	}

	for _, f := range fields {
		switch f {
		case FieldContract:
			if !common.IsHexAddress(request.Contract) {
				return fmt.Errorf("%w: contract", ErrInvalidAddress)
			}
		case FieldUser:
			if !common.IsHexAddress(request.User) {
				return fmt.Errorf("%w: user", ErrInvalidAddress)
			}
		case FieldValues:
			if len(request.Values) == 0 {
				return ErrEmptyValues
			}
			if len(request.Values) > MaxInputValues {
				return ErrTooManyValues
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateDecrypt(request models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle, FieldContract}
	}

	for _, f := range fields {
		switch f {
		case FieldHandle:
			if !isHandle(request.Handle) {
				return ErrInvalidHandle
			}
		case FieldContract:
			if !common.IsHexAddress(request.Contract) {
				return fmt.Errorf("%w: contract", ErrInvalidAddress)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldSignature, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if !common.IsHexAddress(request.Address) {
				return ErrInvalidAddress
			}
		case FieldSignature:
			if len(request.Signature) != 2+2*signatureLength || !has0xPrefix(request.Signature) || !isHex(request.Signature[2:]) {
				return ErrInvalidSig
			}
		case FieldTimestamp:
			if request.Timestamp <= 0 {
				return ErrInvalidLoginTs
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && s[1] == 'x'
}

func isHex(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// isCanonicalHex reports whether s is non-empty 0x-prefixed lower-case hex.
func isCanonicalHex(s string) bool {
	if !has0xPrefix(s) || len(s) == 2 || s != strings.ToLower(s) {
		return false
	}
	return isHex(s[2:])
}

func isHandle(s string) bool {
	return len(s) == 2+2*common.HashLength && isCanonicalHex(s)
}
