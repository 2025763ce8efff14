package models

import "time"

// CreatePayload is the request body for generating a new EPC payload.
// Version, character set and identification are supplied as their wire
// codes ("001"/"002", "1", "SCT"/"INST"). At most one of
// RemittanceReference and RemittanceText may be set.
type CreatePayload struct {
	Version             string `json:"version"`
	CharacterSet        string `json:"character_set"`
	Identification      string `json:"identification"`
	BIC                 string `json:"bic,omitempty"`
	Beneficiary         string `json:"beneficiary"`
	IBAN                string `json:"iban"`
	Amount              string `json:"amount,omitempty"`
	Purpose             string `json:"purpose,omitempty"`
	RemittanceReference string `json:"remittance_reference,omitempty"`
	RemittanceText      string `json:"remittance_text,omitempty"`
	Information         string `json:"information,omitempty"`
}

// Payload is a stored, validated EPC payload record. Text is the exact
// line-oriented serialization handed to the QR renderer.
type Payload struct {
	ID                  string    `json:"id"`
	Version             string    `json:"version"`
	CharacterSet        string    `json:"character_set"`
	Identification      string    `json:"identification"`
	BIC                 string    `json:"bic,omitempty"`
	Beneficiary         string    `json:"beneficiary"`
	IBAN                string    `json:"iban"`
	Amount              string    `json:"amount,omitempty"`
	Purpose             string    `json:"purpose,omitempty"`
	RemittanceReference string    `json:"remittance_reference,omitempty"`
	RemittanceText      string    `json:"remittance_text,omitempty"`
	Information         string    `json:"information,omitempty"`
	Text                string    `json:"text"`
	CreatedAt           time.Time `json:"created_at"`
}
