package nationalid

import (
	"time"

	"bitaqa/pkg/validation"
)

// Details is the serializable projection of an Identifier: everything an
// application typically persists or displays, with snake_case JSON names.
// Age and IsAdult are snapshots of the day the record was produced; the
// Identifier itself never caches them.
type Details struct {
	RawValue          string `json:"raw_value" validate:"required,len=14,numeric"`
	BirthDate         string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BirthYear         int    `json:"birth_year" validate:"min=1900,max=2099"`
	BirthMonth        int    `json:"birth_month" validate:"min=1,max=12"`
	BirthDay          int    `json:"birth_day" validate:"min=1,max=31"`
	Age               int    `json:"age" validate:"min=0,max=150"`
	IsAdult           bool   `json:"is_adult"`
	Gender            string `json:"gender" validate:"required,oneof=male female"`
	GenderArabic      string `json:"gender_ar" validate:"required"`
	GovernorateCode   int    `json:"governorate_code" validate:"min=1,max=88"`
	Governorate       string `json:"governorate" validate:"required"`
	GovernorateArabic string `json:"governorate_ar" validate:"required"`
	SerialNumber      int    `json:"serial_number" validate:"min=0,max=9999"`
	BirthRegion       string `json:"birth_region" validate:"required"`
	BirthRegionArabic string `json:"birth_region_ar" validate:"required"`
}

// DetailsAt builds the projection with age fields evaluated on the given day.
func (id Identifier) DetailsAt(now time.Time) Details {
	return Details{
		RawValue:          id.raw,
		BirthDate:         id.birthDate.Format("2006-01-02"),
		BirthYear:         id.BirthYear(),
		BirthMonth:        int(id.BirthMonth()),
		BirthDay:          id.BirthDay(),
		Age:               id.AgeAt(now),
		IsAdult:           id.IsAdultAt(now),
		Gender:            id.gender.String(),
		GenderArabic:      id.gender.ArabicName(),
		GovernorateCode:   id.GovernorateCode(),
		Governorate:       id.gov.Name(),
		GovernorateArabic: id.gov.ArabicName(),
		SerialNumber:      id.serial,
		BirthRegion:       id.BirthRegion().Name(),
		BirthRegionArabic: id.BirthRegion().ArabicName(),
	}
}

// Details builds the projection as of today.
func (id Identifier) Details() Details {
	return id.DetailsAt(today())
}

// Validate shape-checks a Details record, e.g. one re-ingested from JSON.
// It does not re-run the decode pipeline; parse RawValue for that.
func (d Details) Validate() error {
	return validation.Validate(d)
}
