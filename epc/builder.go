package epc

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/alovak/sepaqr/checksum"
)

// Builder accumulates payload fields and validates them all at once in
// Build. Setters can be called in any order; setting a field twice keeps
// the latest value. A Builder stays usable after a failed Build, so a
// caller can correct the offending field and build again.
type Builder struct {
	version        Version
	characterSet   CharacterSet
	identification Identification
	bic            string
	beneficiary    string
	iban           string
	amount         string
	purpose        Purpose
	remittance     Remittance
	hasRemittance  bool
	information    string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Version(v Version) *Builder {
	b.version = v
	return b
}

func (b *Builder) CharacterSet(c CharacterSet) *Builder {
	b.characterSet = c
	return b
}

func (b *Builder) Identification(i Identification) *Builder {
	b.identification = i
	return b
}

func (b *Builder) BIC(bic string) *Builder {
	b.bic = bic
	return b
}

func (b *Builder) Beneficiary(name string) *Builder {
	b.beneficiary = name
	return b
}

// IBAN sets the beneficiary IBAN. All whitespace is stripped here, at set
// time, so the stored value is already in compact form.
func (b *Builder) IBAN(iban string) *Builder {
	b.iban = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, iban)
	return b
}

// Amount sets the amount as a formatted decimal string, e.g. "10.00".
func (b *Builder) Amount(amount string) *Builder {
	b.amount = amount
	return b
}

func (b *Builder) Purpose(p Purpose) *Builder {
	b.purpose = p
	return b
}

func (b *Builder) Remittance(r Remittance) *Builder {
	b.remittance = r
	b.hasRemittance = true
	return b
}

func (b *Builder) Information(info string) *Builder {
	b.information = info
	return b
}

// Build validates every field and returns an immutable Payload, or the
// error for the first violated rule. It never panics; any malformed input
// maps to exactly one of the package's validation errors.
func (b *Builder) Build() (*Payload, error) {
	if b.version == 0 {
		return nil, ErrMissingVersion
	}
	if b.characterSet == 0 {
		return nil, ErrMissingCharacterSet
	}
	if b.identification == 0 {
		return nil, ErrMissingIdentification
	}
	if b.bic == "" && b.version != V2 {
		return nil, ErrBicRequiredForVersion
	}
	if b.beneficiary == "" {
		return nil, ErrMissingBeneficiary
	}
	if b.iban == "" {
		return nil, ErrMissingIban
	}
	if !checksum.IsValidIBAN(b.iban) {
		return nil, ErrInvalidIban
	}
	if b.amount != "" {
		if err := validateAmount(b.amount); err != nil {
			return nil, err
		}
	}
	if b.purpose != "" {
		if err := validatePurpose(b.purpose); err != nil {
			return nil, err
		}
	}
	if b.hasRemittance {
		if b.remittance.structured {
			if !checksum.IsValidRFReference(b.remittance.value) {
				return nil, ErrInvalidRemittanceReference
			}
		} else if len(b.remittance.value) > 140 {
			return nil, ErrRemittanceTextTooLong
		}
	}

	return &Payload{
		serviceTag:     ServiceTagBCD,
		version:        b.version,
		characterSet:   b.characterSet,
		identification: b.identification,
		bic:            b.bic,
		beneficiary:    b.beneficiary,
		iban:           b.iban,
		amount:         b.amount,
		purpose:        b.purpose,
		remittance:     b.remittance,
		hasRemittance:  b.hasRemittance,
		information:    b.information,
	}, nil
}

// validateAmount enforces the strict amount shape: digits and one dot only,
// 1..9 integer digits, exactly 2 fraction digits, value strictly positive.
// The range 0.01..999999999.99 follows from the shape; only the zero check
// needs a numeric comparison.
func validateAmount(s string) error {
	dot := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.':
			if dot >= 0 {
				return ErrInvalidAmount
			}
			dot = i
		default:
			return ErrInvalidAmount
		}
	}
	if dot < 1 || dot > 9 {
		return ErrInvalidAmount
	}
	if len(s)-dot-1 != 2 {
		return ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// validatePurpose accepts exactly 4 uppercase ASCII letters. PurposeBene
// satisfies this, so named and custom codes share one rule.
func validatePurpose(p Purpose) error {
	if len(p) != 4 {
		return ErrInvalidPurpose
	}
	for i := 0; i < len(p); i++ {
		if p[i] < 'A' || p[i] > 'Z' {
			return ErrInvalidPurpose
		}
	}
	return nil
}
