// Package checksum validates the two mod-97 check digit schemes used by
// European payment identifiers: the IBAN (ISO 13616) and the structured
// RF creditor reference (ISO 11649). Both use the ISO 7064 MOD 97-10
// algorithm and differ only in prefix shape and length bounds.
package checksum

import (
	"strings"
	"unicode"
)

// IsValidIBAN reports whether iban passes the ISO 13616 checksum.
// Whitespace is removed before validation, so grouped notation like
// "DE90 8306 5408 0004 1042 42" is accepted.
func IsValidIBAN(iban string) bool {
	iban = stripSpace(iban)
	if len(iban) < 5 || len(iban) > 34 {
		return false
	}
	if !isUpper(iban[0]) || !isUpper(iban[1]) {
		return false
	}
	for i := 2; i < len(iban); i++ {
		if !isUpper(iban[i]) && !isDigit(iban[i]) {
			return false
		}
	}
	return mod97(iban) == 1
}

// IsValidRFReference reports whether ref is a valid ISO 11649 structured
// creditor reference. Unlike IsValidIBAN, no whitespace is stripped;
// callers must pass a cleaned reference.
func IsValidRFReference(ref string) bool {
	if len(ref) < 5 || len(ref) > 25 {
		return false
	}
	if !strings.HasPrefix(ref, "RF") {
		return false
	}
	for i := 2; i < len(ref); i++ {
		if !isUpper(ref[i]) && !isDigit(ref[i]) {
			return false
		}
	}
	return mod97(ref) == 1
}

// mod97 computes the ISO 7064 MOD 97-10 remainder of s after moving the
// first four characters to the end. Digits pass through; letters map to
// two-digit values (A=10 .. Z=35). The reduction is incremental, so the
// result never overflows no matter how long s is.
//
// Callers must ensure len(s) >= 5 and uppercase-ASCII-or-digit content.
func mod97(s string) int {
	rearranged := s[4:] + s[:4]
	acc := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if isDigit(c) {
			acc = (acc*10 + int(c-'0')) % 97
		} else {
			acc = (acc*100 + int(c-'A') + 10) % 97
		}
	}
	return acc
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
