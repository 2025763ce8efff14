package epc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alovak/sepaqr/epc"
)

func validBuilder() *epc.Builder {
	return epc.NewBuilder().
		Version(epc.V1).
		CharacterSet(epc.UTF8).
		Identification(epc.SCT).
		BIC("GENODEF1SLR").
		Beneficiary("Codeberg e.V.").
		IBAN("DE90 8306 5408 0004 1042 42")
}

func TestBuild_FullPayload(t *testing.T) {
	payload, err := validBuilder().
		Amount("10.00").
		Remittance(epc.RemittanceText("for the good cause")).
		Build()
	require.NoError(t, err)

	require.Equal(t, "DE90830654080004104242", payload.IBAN())
	require.Equal(t, "10.00", payload.Amount())
	require.Equal(t, "Codeberg e.V.", payload.Beneficiary())
}

func TestBuild_IBANStrippedAtSetTime(t *testing.T) {
	payload, err := validBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, "DE90830654080004104242", payload.IBAN())
}

func TestBuild_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		builder *epc.Builder
		wantErr error
	}{
		{
			name:    "missing version",
			builder: epc.NewBuilder().CharacterSet(epc.UTF8).Identification(epc.SCT),
			wantErr: epc.ErrMissingVersion,
		},
		{
			name:    "missing character set",
			builder: epc.NewBuilder().Version(epc.V1).Identification(epc.SCT),
			wantErr: epc.ErrMissingCharacterSet,
		},
		{
			name:    "missing identification",
			builder: epc.NewBuilder().Version(epc.V1).CharacterSet(epc.UTF8),
			wantErr: epc.ErrMissingIdentification,
		},
		{
			name: "v1 without bic",
			builder: epc.NewBuilder().
				Version(epc.V1).
				CharacterSet(epc.UTF8).
				Identification(epc.SCT).
				Beneficiary("Codeberg e.V.").
				IBAN("DE90830654080004104242"),
			wantErr: epc.ErrBicRequiredForVersion,
		},
		{
			name: "missing beneficiary",
			builder: epc.NewBuilder().
				Version(epc.V1).
				CharacterSet(epc.UTF8).
				Identification(epc.SCT).
				BIC("GENODEF1SLR").
				IBAN("DE90830654080004104242"),
			wantErr: epc.ErrMissingBeneficiary,
		},
		{
			name: "missing iban",
			builder: epc.NewBuilder().
				Version(epc.V1).
				CharacterSet(epc.UTF8).
				Identification(epc.SCT).
				BIC("GENODEF1SLR").
				Beneficiary("Codeberg e.V."),
			wantErr: epc.ErrMissingIban,
		},
		{
			name:    "invalid iban",
			builder: validBuilder().IBAN("DE90 8306 5408 0004 1042 43"),
			wantErr: epc.ErrInvalidIban,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := tc.builder.Build()
			require.Nil(t, payload)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, epc.ErrInvalidPayload)
		})
	}
}

func TestBuild_V2WithoutBIC(t *testing.T) {
	payload, err := epc.NewBuilder().
		Version(epc.V2).
		CharacterSet(epc.UTF8).
		Identification(epc.INST).
		Beneficiary("Codeberg e.V.").
		IBAN("DE90830654080004104242").
		Build()
	require.NoError(t, err)
	require.Empty(t, payload.BIC())
}

func TestBuild_AmountValidation(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"10.00", true},
		{"0.01", true},
		{"999999999.99", true},
		{"0.00", false},          // zero not allowed
		{"000000000.00", false},  // zero in disguise
		{"1000000000.00", false}, // 10 integer digits
		{"1.000", false},         // 3 fraction digits
		{"1.0", false},           // 1 fraction digit
		{"10", false},            // no fraction
		{"1..00", false},
		{".99", false}, // empty integer part
		{"1,00", false},
		{"-1.00", false},
		{"1.00 ", false},
	}
	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			_, err := validBuilder().Amount(tc.amount).Build()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, epc.ErrInvalidAmount)
			}
		})
	}
}

func TestBuild_PurposeValidation(t *testing.T) {
	tests := []struct {
		purpose epc.Purpose
		ok      bool
	}{
		{epc.PurposeBene, true},
		{epc.Purpose("ABCD"), true},
		{epc.Purpose("abcd"), false},
		{epc.Purpose("ABCDE"), false},
		{epc.Purpose("ABC"), false},
		{epc.Purpose("AB1D"), false},
	}
	for _, tc := range tests {
		t.Run(string(tc.purpose), func(t *testing.T) {
			_, err := validBuilder().Purpose(tc.purpose).Build()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, epc.ErrInvalidPurpose)
			}
		})
	}
}

func TestBuild_RemittanceValidation(t *testing.T) {
	_, err := validBuilder().Remittance(epc.RemittanceReference("RF45G72UUR")).Build()
	require.NoError(t, err)

	_, err = validBuilder().Remittance(epc.RemittanceReference("RF55G72UUR")).Build()
	require.ErrorIs(t, err, epc.ErrInvalidRemittanceReference)

	long := make([]byte, 141)
	for i := range long {
		long[i] = 'x'
	}
	_, err = validBuilder().Remittance(epc.RemittanceText(string(long))).Build()
	require.ErrorIs(t, err, epc.ErrRemittanceTextTooLong)

	_, err = validBuilder().Remittance(epc.RemittanceText(string(long[:140]))).Build()
	require.NoError(t, err)
}

func TestBuilder_ReusableAfterFailure(t *testing.T) {
	b := validBuilder().Amount("0.00")

	_, err := b.Build()
	require.ErrorIs(t, err, epc.ErrInvalidAmount)

	// Correct the field and rebuild; all other fields remain set.
	payload, err := b.Amount("12.34").Build()
	require.NoError(t, err)
	require.Equal(t, "12.34", payload.Amount())
}

func TestBuilder_LastWriteWins(t *testing.T) {
	payload, err := validBuilder().
		Beneficiary("First Name").
		Beneficiary("Second Name").
		Build()
	require.NoError(t, err)
	require.Equal(t, "Second Name", payload.Beneficiary())
}

func TestParseCodes(t *testing.T) {
	v, err := epc.ParseVersion("001")
	require.NoError(t, err)
	require.Equal(t, epc.V1, v)

	v, err = epc.ParseVersion("002")
	require.NoError(t, err)
	require.Equal(t, epc.V2, v)

	_, err = epc.ParseVersion("003")
	require.Error(t, err)

	cs, err := epc.ParseCharacterSet("1")
	require.NoError(t, err)
	require.Equal(t, epc.UTF8, cs)

	_, err = epc.ParseCharacterSet("2")
	require.Error(t, err)

	id, err := epc.ParseIdentification("INST")
	require.NoError(t, err)
	require.Equal(t, epc.INST, id)

	_, err = epc.ParseIdentification("SEPA")
	require.Error(t, err)
}
