// Package nationalid decodes, validates, and derives structured facts from
// 14-digit Egyptian National Identity Numbers: birth date, gender,
// governorate, serial number, and the estimated issue/expiry window.
//
// Construction goes through Parse (or TryParse); a value that exists has
// already passed format, calendar, and governorate-membership checks.
// Validation is structural only: nothing here can tell whether a number was
// actually issued by the registry.
package nationalid

import (
	"fmt"
	"time"

	dErrors "bitaqa/pkg/domain-errors"
	"bitaqa/pkg/governorate"
)

// Layout of the 14 digits: C YYMMDD GG SSSS K.
// C is the century digit, GG the governorate code, SSSS the serial block
// (its last digit doubles as the gender bit), K the checksum digit.
const (
	rawLength = 14

	centuryDigit1900 = '2'
	centuryDigit2000 = '3'

	genderDigitOffset = 12
)

// Gender is derived from the last digit of the serial block: even is female,
// odd is male.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Name returns the capitalized English display name.
func (g Gender) Name() string {
	if g == GenderMale {
		return "Male"
	}
	return "Female"
}

// ArabicName returns the Arabic display name.
func (g Gender) ArabicName() string {
	if g == GenderMale {
		return "ذكر"
	}
	return "أنثى"
}

// String returns the canonical lowercase form.
func (g Gender) String() string {
	return string(g)
}

// Identifier is an immutable, fully validated national ID number. The zero
// value is not a valid Identifier; obtain one via Parse or TryParse.
type Identifier struct {
	raw       string
	birthDate time.Time // UTC midnight
	gov       governorate.Governorate
	serial    int
	gender    Gender
}

type config struct {
	validateChecksum bool
}

// Option configures a parse attempt.
type Option func(*config)

// WithChecksum enables the checksum step of the pipeline. It is off by
// default: the issuing authority's real algorithm is not public, and the
// weighting used here is a best-effort approximation that may reject
// genuinely issued numbers.
func WithChecksum() Option {
	return func(c *config) {
		c.validateChecksum = true
	}
}

// Parse runs the full construction pipeline over a candidate number.
//
// Pipeline order: format, optional checksum, century digit, calendar date
// round-trip, governorate membership, serial/gender extraction. The first
// failing step returns a typed domain error (see bitaqa/pkg/domain-errors)
// and no partial value escapes.
func Parse(raw string, opts ...Option) (Identifier, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if !IsValidFormat(raw) {
		return Identifier{}, dErrors.New(dErrors.CodeInvalidFormat,
			"national ID must be exactly 14 ASCII digits")
	}

	if cfg.validateChecksum && !ValidateChecksum(raw) {
		return Identifier{}, dErrors.New(dErrors.CodeInvalidChecksum,
			"checksum digit does not match weighted sum")
	}

	var baseYear int
	switch raw[0] {
	case centuryDigit1900:
		baseYear = 1900
	case centuryDigit2000:
		baseYear = 2000
	default:
		return Identifier{}, dErrors.New(dErrors.CodeInvalidBirthDate,
			fmt.Sprintf("century digit must be 2 or 3, got %c", raw[0]))
	}

	year := baseYear + twoDigits(raw, 1)
	month := twoDigits(raw, 3)
	day := twoDigits(raw, 5)

	// time.Date normalizes out-of-range components (Feb 31 rolls into March),
	// so an exact round-trip is the calendar-validity check.
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || birth.Month() != time.Month(month) || birth.Day() != day {
		return Identifier{}, dErrors.New(dErrors.CodeInvalidBirthDate,
			fmt.Sprintf("%04d-%02d-%02d is not a real calendar date", year, month, day))
	}

	code := twoDigits(raw, 7)
	gov, ok := governorate.FromCode(code)
	if !ok {
		return Identifier{}, dErrors.New(dErrors.CodeInvalidGovernorate,
			fmt.Sprintf("governorate code %02d is not assigned", code))
	}

	serial := 0
	for i := 9; i < 13; i++ {
		serial = serial*10 + int(raw[i]-'0')
	}

	gender := GenderFemale
	if (raw[genderDigitOffset]-'0')%2 == 1 {
		gender = GenderMale
	}

	return Identifier{
		raw:       raw,
		birthDate: birth,
		gov:       gov,
		serial:    serial,
		gender:    gender,
	}, nil
}

// TryParse runs the same pipeline but reports rejection as ok=false instead
// of an error, for input-validation flows that do not care why. Only the four
// domain rejection kinds are absorbed; a non-rejection error escaping Parse
// would be a defect and panics rather than masquerading as bad input.
func TryParse(raw string, opts ...Option) (Identifier, bool) {
	id, err := Parse(raw, opts...)
	if err == nil {
		return id, true
	}
	if dErrors.IsRejection(err) {
		return Identifier{}, false
	}
	panic(err)
}

// twoDigits reads the two-digit decimal number at offset i. Callers must have
// format-checked raw first.
func twoDigits(raw string, i int) int {
	return int(raw[i]-'0')*10 + int(raw[i+1]-'0')
}

// String returns the original 14-digit value.
func (id Identifier) String() string {
	return id.raw
}

// IsZero reports whether the Identifier is the zero value rather than a
// parsed number.
func (id Identifier) IsZero() bool {
	return id.raw == ""
}

// BirthDate returns the encoded birth date as a UTC midnight time.
func (id Identifier) BirthDate() time.Time {
	return id.birthDate
}

// BirthYear returns the four-digit birth year.
func (id Identifier) BirthYear() int {
	return id.birthDate.Year()
}

// BirthMonth returns the birth month (1-12).
func (id Identifier) BirthMonth() time.Month {
	return id.birthDate.Month()
}

// BirthDay returns the day of the birth month.
func (id Identifier) BirthDay() int {
	return id.birthDate.Day()
}

// Governorate returns the governorate of birth registration.
func (id Identifier) Governorate() governorate.Governorate {
	return id.gov
}

// GovernorateCode returns the two-digit governorate code.
func (id Identifier) GovernorateCode() int {
	return id.gov.Code()
}

// SerialNumber returns the four-digit serial block as an integer (0-9999).
func (id Identifier) SerialNumber() int {
	return id.serial
}

// Gender returns the gender encoded by the serial block's last digit.
func (id Identifier) Gender() Gender {
	return id.gender
}

// BirthRegion returns the geographic region of the birth governorate.
func (id Identifier) BirthRegion() governorate.Region {
	return id.gov.Region()
}

// BornAbroad reports whether the birth was registered outside Egypt (code 88).
func (id Identifier) BornAbroad() bool {
	return id.gov == governorate.Foreign
}

// BornInGreaterCairo reports whether the birth governorate belongs to the
// Greater Cairo region.
func (id Identifier) BornInGreaterCairo() bool {
	return id.BirthRegion() == governorate.RegionGreaterCairo
}

// BornInUpperEgypt reports whether the birth governorate belongs to Upper Egypt.
func (id Identifier) BornInUpperEgypt() bool {
	return id.BirthRegion() == governorate.RegionUpperEgypt
}

// Equal reports whether both identifiers carry the same raw 14-digit value.
// Every derived field is a pure function of the raw value, so this is the
// canonical equality rule.
func (id Identifier) Equal(other Identifier) bool {
	return id.raw == other.raw
}

// Compare orders identifiers by birth date ascending, tie-broken by serial
// number ascending. The result is -1, 0, or +1, suitable for slices.SortFunc.
func (id Identifier) Compare(other Identifier) int {
	if c := id.birthDate.Compare(other.birthDate); c != 0 {
		return c
	}
	switch {
	case id.serial < other.serial:
		return -1
	case id.serial > other.serial:
		return 1
	default:
		return 0
	}
}
