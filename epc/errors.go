package epc

import (
	"errors"
	"fmt"
)

// ErrInvalidPayload is wrapped by every validation error returned from
// Build, so callers can match the whole class with a single errors.Is.
var ErrInvalidPayload = errors.New("invalid payload")

// One error per validation rule. Build fails fast: the first violated rule
// in documented order decides which of these is returned.
var (
	ErrMissingVersion             = validationErr("version missing")
	ErrMissingCharacterSet        = validationErr("character set missing")
	ErrMissingIdentification      = validationErr("identification missing")
	ErrBicRequiredForVersion      = validationErr("bic is required unless version is 002")
	ErrMissingBeneficiary         = validationErr("beneficiary missing")
	ErrMissingIban                = validationErr("iban missing")
	ErrInvalidIban                = validationErr("invalid iban")
	ErrInvalidAmount              = validationErr("invalid amount")
	ErrInvalidPurpose             = validationErr("invalid purpose")
	ErrInvalidRemittanceReference = validationErr("invalid remittance reference")
	ErrRemittanceTextTooLong      = validationErr("remittance text exceeds 140 characters")
)

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPayload, msg)
}
