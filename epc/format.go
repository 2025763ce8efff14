package epc

import "strings"

// Lines returns the payload's twelve lines in standard order. Absent
// optional fields yield empty lines rather than being omitted, because the
// format addresses fields by line position. The structured reference and
// unstructured text occupy two slots of which at most one is non-empty.
func (p *Payload) Lines() []string {
	reference, text := "", ""
	if p.hasRemittance {
		if p.remittance.structured {
			reference = p.remittance.value
		} else {
			text = p.remittance.value
		}
	}
	return []string{
		p.serviceTag.String(),
		p.version.String(),
		p.characterSet.String(),
		p.identification.String(),
		p.bic,
		p.beneficiary,
		p.iban,
		p.amount,
		p.purpose.String(),
		reference,
		text,
		p.information,
	}
}

// String serializes the payload into the newline-delimited text a QR
// renderer consumes. No newline follows the final (information) line.
func (p *Payload) String() string {
	return strings.Join(p.Lines(), "\n")
}
