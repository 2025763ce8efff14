package checksum

import "testing"

func TestMod97(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		// Valid identifiers reduce to 1.
		{"DE68210501700012345678", 1},
		{"GB82WEST12345698765432", 1},
		{"RF45G72UUR", 1},
		{"RF6518K5", 1},
		// Structurally well-formed but wrong check digits.
		{"RF35C4", 82},
		{"RF214377", 51},
	}
	for _, c := range cases {
		if got := mod97(c.in); got != c.want {
			t.Fatalf("mod97(%q) = %d want %d", c.in, got, c.want)
		}
	}
}

func TestIsValidIBAN(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"DE90 8306 5408 0004 1042 42", true},
		{"DE90830654080004104242", true},
		{"DE90 8306 5408 0004 1042 43", false}, // single digit perturbation
		{"DE68210501700012345678", true},
		{"GB82WEST12345698765432", true},
		{"", false},
		{"DE90", false},                        // shorter than 5 chars
		{"de90830654080004104242", false},      // lowercase country code
		{"D990830654080004104242", false},      // digit in country code
		{"DE90-8306-5408-0004-1042-42", false}, // punctuation not stripped
		{"DE90830654080004104243", false},
	}
	for _, c := range cases {
		if got := IsValidIBAN(c.in); got != c.ok {
			t.Fatalf("IsValidIBAN(%q) = %v want %v", c.in, got, c.ok)
		}
	}
}

func TestIsValidIBAN_WhitespaceInsensitive(t *testing.T) {
	variants := []string{
		"DE90830654080004104242",
		"DE90 8306 5408 0004 1042 42",
		"DE 90 83 06 54 08 00 04 10 42 42",
		"  DE90830654080004104242  ",
		"DE90\t8306 5408 0004 1042 42",
	}
	for _, v := range variants {
		if !IsValidIBAN(v) {
			t.Fatalf("IsValidIBAN(%q) = false, want true", v)
		}
	}
}

func TestIsValidIBAN_LengthBounds(t *testing.T) {
	// 34 characters is the ISO 13616 maximum; anything longer fails
	// structurally before the checksum runs.
	long := "DE00" + "123456789012345678901234567890X"
	if IsValidIBAN(long) {
		t.Fatalf("IsValidIBAN accepted %d-char input", len(long))
	}
}

func TestIsValidRFReference(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"RF45G72UUR", true},
		{"RF55G72UUR", false}, // perturbed check digits
		{"RF6518K5", true},
		{"RF18539007547034", true},
		{"RF35C4", false},   // well-formed, wrong check digits
		{"RF214377", false}, // well-formed, wrong check digits
		{"", false},
		{"RF45", false},                        // too short
		{"XX45G72UUR", false},                  // wrong prefix
		{"RF45 G72UUR", false},                 // whitespace is not stripped
		{"RF45g72uur", false},                  // lowercase
		{"RF00123456789012345678901234", false}, // 28 chars, beyond the 25 cap
	}
	for _, c := range cases {
		if got := IsValidRFReference(c.in); got != c.ok {
			t.Fatalf("IsValidRFReference(%q) = %v want %v", c.in, got, c.ok)
		}
	}
}

func TestValidatorsAreDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if !IsValidIBAN("DE90 8306 5408 0004 1042 42") {
			t.Fatal("IsValidIBAN flapped")
		}
		if !IsValidRFReference("RF45G72UUR") {
			t.Fatal("IsValidRFReference flapped")
		}
	}
}
