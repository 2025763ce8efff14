// Package epc builds and serializes the EPC "Quick Response Code" payload
// for SEPA credit transfers. The payload is a strict, line-oriented text
// block; a QR renderer embeds it as opaque bytes.
package epc

import "fmt"

// ServiceTag is the payload's service tag. Only "BCD" is defined.
type ServiceTag int

const ServiceTagBCD ServiceTag = iota + 1

func (s ServiceTag) String() string {
	return "BCD"
}

// Version selects the payload version.
type Version int

const (
	// V1 serializes as "001" (EEA plus non-EEA) and requires a BIC.
	V1 Version = iota + 1
	// V2 serializes as "002" (EEA only); the BIC is optional.
	V2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "001"
	case V2:
		return "002"
	default:
		return ""
	}
}

// ParseVersion maps a version code ("001" or "002") to its Version.
func ParseVersion(code string) (Version, error) {
	switch code {
	case "001":
		return V1, nil
	case "002":
		return V2, nil
	default:
		return 0, fmt.Errorf("unknown version code %q", code)
	}
}

// CharacterSet selects the payload character set. Codes 2..8 are reserved
// for the ISO 8859 variants of the standard and not supported here.
type CharacterSet int

const UTF8 CharacterSet = iota + 1

func (c CharacterSet) String() string {
	switch c {
	case UTF8:
		return "1"
	default:
		return ""
	}
}

// ParseCharacterSet maps a character set code to its CharacterSet.
func ParseCharacterSet(code string) (CharacterSet, error) {
	switch code {
	case "1":
		return UTF8, nil
	default:
		return 0, fmt.Errorf("unknown character set code %q", code)
	}
}

// Identification selects the SEPA scheme.
type Identification int

const (
	// SCT is a SEPA Credit Transfer.
	SCT Identification = iota + 1
	// INST is a SEPA Instant Credit Transfer.
	INST
)

func (i Identification) String() string {
	switch i {
	case SCT:
		return "SCT"
	case INST:
		return "INST"
	default:
		return ""
	}
}

// ParseIdentification maps an identification code to its Identification.
func ParseIdentification(code string) (Identification, error) {
	switch code {
	case "SCT":
		return SCT, nil
	case "INST":
		return INST, nil
	default:
		return 0, fmt.Errorf("unknown identification code %q", code)
	}
}

// Purpose is the AT-44 purpose code of the transfer: BENE or any other
// 4-letter uppercase code. The zero value means "not set".
type Purpose string

const PurposeBene Purpose = "BENE"

func (p Purpose) String() string {
	return string(p)
}

// Remittance is the remittance information: either a structured creditor
// reference (ISO 11649, "RF" prefixed) or unstructured free text. The two
// forms are mutually exclusive, which the single tagged value enforces.
type Remittance struct {
	value      string
	structured bool
}

// RemittanceReference wraps a structured creditor reference.
func RemittanceReference(ref string) Remittance {
	return Remittance{value: ref, structured: true}
}

// RemittanceText wraps unstructured remittance text (max 140 characters).
func RemittanceText(text string) Remittance {
	return Remittance{value: text}
}

// IsStructured reports whether the remittance is a creditor reference.
func (r Remittance) IsStructured() bool {
	return r.structured
}

func (r Remittance) String() string {
	return r.value
}

// Payload is a validated EPC payload. Instances can only be obtained from
// Builder.Build, so every Payload satisfies the field constraints.
type Payload struct {
	serviceTag     ServiceTag
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

// Version returns the payload version.
func (p *Payload) Version() Version { return p.version }

// BIC returns the beneficiary bank's BIC, empty for V2 payloads without one.
func (p *Payload) BIC() string { return p.bic }

// Beneficiary returns the beneficiary name.
func (p *Payload) Beneficiary() string { return p.beneficiary }

// IBAN returns the beneficiary IBAN with all whitespace removed.
func (p *Payload) IBAN() string { return p.iban }

// Amount returns the amount exactly as supplied, or "" when not set. The
// original string is kept rather than re-rendered from a float, so the
// payload never picks up binary rounding drift.
func (p *Payload) Amount() string { return p.amount }

// Remittance returns the remittance information and whether one was set.
func (p *Payload) Remittance() (Remittance, bool) {
	return p.remittance, p.hasRemittance
}
