// sepaqr builds an EPC QR payload from the command line and prints the
// payload text or writes a QR PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"

	"github.com/alovak/sepaqr/epc"
)

var (
	flagVersion     = flag.String("version", "001", "payload version: 001 or 002")
	flagCharset     = flag.String("charset", "1", "character set code (1 = UTF-8)")
	flagID          = flag.String("identification", "SCT", "identification: SCT or INST")
	flagBIC         = flag.String("bic", "", "beneficiary bank BIC (required for version 001)")
	flagBeneficiary = flag.String("beneficiary", "", "beneficiary name")
	flagIBAN        = flag.String("iban", "", "beneficiary IBAN (spaces allowed)")
	flagAmount      = flag.String("amount", "", "amount in EUR, e.g. 10.00")
	flagPurpose     = flag.String("purpose", "", "4-letter purpose code, e.g. BENE")
	flagReference   = flag.String("reference", "", "structured creditor reference (RF...)")
	flagText        = flag.String("text", "", "unstructured remittance text")
	flagInformation = flag.String("information", "", "beneficiary to originator information")
	flagOut         = flag.String("out", "", "write QR PNG to this path instead of printing the payload text")
	flagSize        = flag.Int("size", 256, "QR PNG edge length in pixels")
)

func main() {
	flag.Parse()

	if *flagReference != "" && *flagText != "" {
		fail("-reference and -text are mutually exclusive")
	}
	if *flagSize <= 0 {
		fail("-size must be positive")
	}

	version, err := epc.ParseVersion(*flagVersion)
	must(err)
	charset, err := epc.ParseCharacterSet(*flagCharset)
	must(err)
	identification, err := epc.ParseIdentification(*flagID)
	must(err)

	b := epc.NewBuilder().
		Version(version).
		CharacterSet(charset).
		Identification(identification).
		BIC(*flagBIC).
		Beneficiary(*flagBeneficiary).
		IBAN(*flagIBAN).
		Amount(*flagAmount).
		Purpose(epc.Purpose(*flagPurpose)).
		Information(*flagInformation)

	if *flagReference != "" {
		b.Remittance(epc.RemittanceReference(*flagReference))
	}
	if *flagText != "" {
		b.Remittance(epc.RemittanceText(*flagText))
	}

	payload, err := b.Build()
	must(err)

	if *flagOut == "" {
		fmt.Println(payload.String())
		return
	}

	must(qrcode.WriteFile(payload.String(), qrcode.Medium, *flagSize, *flagOut))
	fmt.Printf("QR code written to %s\n", *flagOut)
}

func must(err error) {
	if err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
