package governorate

// Region is a coarse geographic grouping of governorates.
type Region string

const (
	RegionGreaterCairo Region = "greater_cairo"
	RegionAlexandria   Region = "alexandria"
	RegionDelta        Region = "delta"
	RegionCanal        Region = "canal"
	RegionUpperEgypt   Region = "upper_egypt"
	RegionFrontier     Region = "frontier"
	RegionAbroad       Region = "abroad"

	// RegionUnknown is returned when resolving an unassigned governorate code.
	// It never appears for a governorate that passed decoding.
	RegionUnknown Region = "unknown"
)

type regionInfo struct {
	name       string
	arabicName string
}

var regionTable = map[Region]regionInfo{
	RegionGreaterCairo: {"Greater Cairo", "القاهرة الكبرى"},
	RegionAlexandria:   {"Alexandria", "الإسكندرية"},
	RegionDelta:        {"Nile Delta", "الدلتا"},
	RegionCanal:        {"Canal", "القناة"},
	RegionUpperEgypt:   {"Upper Egypt", "الصعيد"},
	RegionFrontier:     {"Frontier", "الحدود"},
	RegionAbroad:       {"Abroad", "خارج الجمهورية"},
}

// IsValid reports whether the region is one of the defined groupings.
func (r Region) IsValid() bool {
	_, ok := regionTable[r]
	return ok
}

// Name returns the English display name, or "Unknown" for the unknown region.
func (r Region) Name() string {
	if i, ok := regionTable[r]; ok {
		return i.name
	}
	return "Unknown"
}

// ArabicName returns the Arabic display name, or "غير معروف" for the unknown region.
func (r Region) ArabicName() string {
	if i, ok := regionTable[r]; ok {
		return i.arabicName
	}
	return "غير معروف"
}

// String returns the stable snake_case identifier of the region.
func (r Region) String() string {
	return string(r)
}
