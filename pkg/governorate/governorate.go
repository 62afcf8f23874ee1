// Package governorate holds the fixed reference tables for Egyptian
// governorates and their geographic regions as encoded in national ID
// numbers. The tables are closed: every code the decoder can accept is
// present here, and nothing can be registered at runtime.
package governorate

import "sort"

// Governorate identifies one of Egypt's administrative governorates by its
// two-digit national ID code. The constants below are the complete assigned
// set; any other code is invalid.
type Governorate int

const (
	Cairo        Governorate = 1
	Alexandria   Governorate = 2
	PortSaid     Governorate = 3
	Suez         Governorate = 4
	Damietta     Governorate = 11
	Dakahlia     Governorate = 12
	Sharqia      Governorate = 13
	Qalyubia     Governorate = 14
	KafrElSheikh Governorate = 15
	Gharbia      Governorate = 16
	Monufia      Governorate = 17
	Beheira      Governorate = 18
	Ismailia     Governorate = 19
	Giza         Governorate = 21
	BeniSuef     Governorate = 22
	Fayoum       Governorate = 23
	Minya        Governorate = 24
	Assiut       Governorate = 25
	Sohag        Governorate = 26
	Qena         Governorate = 27
	Aswan        Governorate = 28
	Luxor        Governorate = 29
	RedSea       Governorate = 31
	NewValley    Governorate = 32
	Matrouh      Governorate = 33
	NorthSinai   Governorate = 34
	SouthSinai   Governorate = 35

	// Foreign marks citizens whose birth was registered outside Egypt.
	Foreign Governorate = 88
)

type info struct {
	name       string
	arabicName string
	region     Region
}

// table is the single source of truth for governorate names and regions.
var table = map[Governorate]info{
	Cairo:        {"Cairo", "القاهرة", RegionGreaterCairo},
	Alexandria:   {"Alexandria", "الإسكندرية", RegionAlexandria},
	PortSaid:     {"Port Said", "بورسعيد", RegionCanal},
	Suez:         {"Suez", "السويس", RegionCanal},
	Damietta:     {"Damietta", "دمياط", RegionDelta},
	Dakahlia:     {"Dakahlia", "الدقهلية", RegionDelta},
	Sharqia:      {"Sharqia", "الشرقية", RegionDelta},
	Qalyubia:     {"Qalyubia", "القليوبية", RegionGreaterCairo},
	KafrElSheikh: {"Kafr El Sheikh", "كفر الشيخ", RegionDelta},
	Gharbia:      {"Gharbia", "الغربية", RegionDelta},
	Monufia:      {"Monufia", "المنوفية", RegionDelta},
	Beheira:      {"Beheira", "البحيرة", RegionDelta},
	Ismailia:     {"Ismailia", "الإسماعيلية", RegionCanal},
	Giza:         {"Giza", "الجيزة", RegionGreaterCairo},
	BeniSuef:     {"Beni Suef", "بني سويف", RegionUpperEgypt},
	Fayoum:       {"Fayoum", "الفيوم", RegionUpperEgypt},
	Minya:        {"Minya", "المنيا", RegionUpperEgypt},
	Assiut:       {"Assiut", "أسيوط", RegionUpperEgypt},
	Sohag:        {"Sohag", "سوهاج", RegionUpperEgypt},
	Qena:         {"Qena", "قنا", RegionUpperEgypt},
	Aswan:        {"Aswan", "أسوان", RegionUpperEgypt},
	Luxor:        {"Luxor", "الأقصر", RegionUpperEgypt},
	RedSea:       {"Red Sea", "البحر الأحمر", RegionFrontier},
	NewValley:    {"New Valley", "الوادي الجديد", RegionFrontier},
	Matrouh:      {"Matrouh", "مطروح", RegionFrontier},
	NorthSinai:   {"North Sinai", "شمال سيناء", RegionFrontier},
	SouthSinai:   {"South Sinai", "جنوب سيناء", RegionFrontier},
	Foreign:      {"Born Abroad", "خارج الجمهورية", RegionAbroad},
}

// FromCode resolves a two-digit national ID code to its governorate.
// The second return is false for unassigned codes.
func FromCode(code int) (Governorate, bool) {
	g := Governorate(code)
	_, ok := table[g]
	return g, ok
}

// IsValidCode reports whether code is an assigned governorate code.
func IsValidCode(code int) bool {
	_, ok := table[Governorate(code)]
	return ok
}

// All returns every assigned governorate in ascending code order.
func All() []Governorate {
	gs := make([]Governorate, 0, len(table))
	for g := range table {
		gs = append(gs, g)
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i] < gs[j] })
	return gs
}

// Code returns the two-digit national ID code.
func (g Governorate) Code() int {
	return int(g)
}

// IsValid reports whether the governorate is one of the assigned constants.
func (g Governorate) IsValid() bool {
	_, ok := table[g]
	return ok
}

// Name returns the English display name, or "Unknown" for unassigned codes.
func (g Governorate) Name() string {
	if i, ok := table[g]; ok {
		return i.name
	}
	return "Unknown"
}

// ArabicName returns the Arabic display name, or "غير معروف" for unassigned codes.
func (g Governorate) ArabicName() string {
	if i, ok := table[g]; ok {
		return i.arabicName
	}
	return "غير معروف"
}

// Region returns the geographic region the governorate belongs to.
func (g Governorate) Region() Region {
	if i, ok := table[g]; ok {
		return i.region
	}
	return RegionUnknown
}

// String returns the English display name for logging and debugging.
func (g Governorate) String() string {
	return g.Name()
}
