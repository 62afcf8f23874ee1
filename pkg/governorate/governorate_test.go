package governorate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTableCoverage validates the closed-table invariant: every assigned code
// resolves to non-empty bilingual names and a defined region.
//
// Justification: the decoder trusts this table for membership; a hole here
// would let an identifier construct with an unnamed governorate.
func TestTableCoverage(t *testing.T) {
	all := All()
	require.Len(t, all, 28)

	for _, g := range all {
		assert.True(t, g.IsValid(), "code %d", g.Code())
		assert.NotEmpty(t, g.Name(), "code %d", g.Code())
		assert.NotEmpty(t, g.ArabicName(), "code %d", g.Code())
		assert.True(t, g.Region().IsValid(), "code %d", g.Code())
		assert.NotEmpty(t, g.Region().Name(), "code %d", g.Code())
		assert.NotEmpty(t, g.Region().ArabicName(), "code %d", g.Code())
	}
}

func TestFromCode(t *testing.T) {
	t.Run("resolves assigned codes", func(t *testing.T) {
		g, ok := FromCode(1)
		require.True(t, ok)
		assert.Equal(t, Cairo, g)
		assert.Equal(t, "Cairo", g.Name())
		assert.Equal(t, "القاهرة", g.ArabicName())
	})

	t.Run("rejects unassigned codes", func(t *testing.T) {
		for _, code := range []int{0, 5, 10, 20, 30, 36, 40, 87, 89, 99, -1} {
			_, ok := FromCode(code)
			assert.False(t, ok, "code %d", code)
			assert.False(t, IsValidCode(code), "code %d", code)
		}
	})

	t.Run("code set boundaries", func(t *testing.T) {
		for _, code := range []int{1, 4, 11, 19, 21, 29, 31, 35, 88} {
			assert.True(t, IsValidCode(code), "code %d", code)
		}
	})
}

func TestRegionAssignments(t *testing.T) {
	tests := []struct {
		g      Governorate
		region Region
	}{
		{Cairo, RegionGreaterCairo},
		{Giza, RegionGreaterCairo},
		{Qalyubia, RegionGreaterCairo},
		{Alexandria, RegionAlexandria},
		{PortSaid, RegionCanal},
		{Ismailia, RegionCanal},
		{Dakahlia, RegionDelta},
		{Gharbia, RegionDelta},
		{Aswan, RegionUpperEgypt},
		{Luxor, RegionUpperEgypt},
		{BeniSuef, RegionUpperEgypt},
		{NorthSinai, RegionFrontier},
		{NewValley, RegionFrontier},
		{Foreign, RegionAbroad},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.region, tt.g.Region(), tt.g.Name())
	}
}

func TestUnknownLookups(t *testing.T) {
	g := Governorate(99)
	assert.Equal(t, "Unknown", g.Name())
	assert.Equal(t, "غير معروف", g.ArabicName())
	assert.Equal(t, RegionUnknown, g.Region())
	assert.False(t, RegionUnknown.IsValid())

	assert.Equal(t, "Upper Egypt", RegionUpperEgypt.Name())
	assert.Equal(t, "الصعيد", RegionUpperEgypt.ArabicName())
	assert.Equal(t, "upper_egypt", RegionUpperEgypt.String())
}

func TestAllSorted(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Code(), all[i].Code())
	}
	assert.Equal(t, Cairo, all[0])
	assert.Equal(t, Foreign, all[len(all)-1])
}
