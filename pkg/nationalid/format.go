package nationalid

import (
	"fmt"
	"strings"
)

// Canonical string renderings. All are pure slices of the raw value; the
// serial segment SSSSS below covers positions 9-13, i.e. the four serial
// digits plus the checksum digit.

// Dashed renders C-YYMMDD-GG-SSSSS.
func (id Identifier) Dashed() string {
	return id.segmented("-")
}

// Spaced renders C YYMMDD GG SSSSS.
func (id Identifier) Spaced() string {
	return id.segmented(" ")
}

// Bracketed renders [C][YYMMDD][GG][SSSSS].
func (id Identifier) Bracketed() string {
	return fmt.Sprintf("[%s][%s][%s][%s]", id.raw[:1], id.raw[1:7], id.raw[7:9], id.raw[9:])
}

func (id Identifier) segmented(sep string) string {
	return id.raw[:1] + sep + id.raw[1:7] + sep + id.raw[7:9] + sep + id.raw[9:]
}

// Masked hides the middle of the number for logs and UI, keeping the first
// three and last two digits around a fixed eight-character mask:
// 30101011234567 becomes 301********67. The mask is deliberately shorter than
// the span it hides so the output does not advertise the exact digit count.
func (id Identifier) Masked() string {
	return id.raw[:3] + strings.Repeat("*", 8) + id.raw[rawLength-2:]
}

// Detailed renders a multi-line labeled breakdown for human inspection.
func (id Identifier) Detailed() string {
	var b strings.Builder
	fmt.Fprintf(&b, "National ID : %s\n", id.raw)
	fmt.Fprintf(&b, "Century     : %s\n", id.centuryLabel())
	fmt.Fprintf(&b, "Birth Date  : %s\n", id.birthDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Governorate : %s (%s)\n", id.gov.Name(), id.gov.ArabicName())
	fmt.Fprintf(&b, "Region      : %s (%s)\n", id.BirthRegion().Name(), id.BirthRegion().ArabicName())
	fmt.Fprintf(&b, "Serial      : %04d\n", id.serial)
	fmt.Fprintf(&b, "Gender      : %s (%s)", id.gender.Name(), id.gender.ArabicName())
	return b.String()
}

func (id Identifier) centuryLabel() string {
	if id.raw[0] == centuryDigit1900 {
		return "1900-1999"
	}
	return "2000-2099"
}
