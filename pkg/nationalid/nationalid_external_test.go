package nationalid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitaqa/pkg/governorate"
	"bitaqa/pkg/nationalid"
	"bitaqa/pkg/testutil"
)

// These tests exercise the package through its public surface only, using the
// shared fixtures.

func TestFixturesDecodeWithChecksum(t *testing.T) {
	fixtures := map[string]string{
		"male cairo":   testutil.TestNIDs.MaleCairo2001,
		"female giza":  testutil.TestNIDs.FemaleGiza1995,
		"male aswan":   testutil.TestNIDs.MaleAswan1987,
		"female leap":  testutil.TestNIDs.FemaleLeap2004,
		"foreign born": testutil.TestNIDs.ForeignBorn2005,
	}
	for name, raw := range fixtures {
		t.Run(name, func(t *testing.T) {
			id, err := nationalid.Parse(raw, nationalid.WithChecksum())
			require.NoError(t, err)
			assert.Equal(t, raw, id.String())
			assert.True(t, nationalid.ValidateChecksum(raw))
		})
	}
}

func TestBuilderEncodesFields(t *testing.T) {
	id := testutil.NewRawBuilder().
		WithBirthDate(1995, time.March, 14).
		WithGovernorate(governorate.Giza).
		WithSerial(1238).
		MustParse()

	assert.Equal(t, 1995, id.BirthYear())
	assert.Equal(t, time.March, id.BirthMonth())
	assert.Equal(t, 14, id.BirthDay())
	assert.Equal(t, governorate.Giza, id.Governorate())
	assert.Equal(t, 1238, id.SerialNumber())
	assert.Equal(t, nationalid.GenderFemale, id.Gender())
}

func TestBuilderGenderHelpers(t *testing.T) {
	female := testutil.NewRawBuilder().Female().MustParse()
	assert.Equal(t, nationalid.GenderFemale, female.Gender())

	male := testutil.NewRawBuilder().WithSerial(2222).Male().MustParse()
	assert.Equal(t, nationalid.GenderMale, male.Gender())
}

// TestConcurrentDecoding verifies that independent callers can parse and
// derive concurrently without coordination: construction touches no shared
// state and the reference tables are read-only.
func TestConcurrentDecoding(t *testing.T) {
	valid := testutil.TestNIDs.MaleCairo2001
	invalid := "30101019999999"
	at := time.Date(2026, time.January, 30, 0, 0, 0, 0, time.UTC)

	result := testutil.RunConcurrent(64, func(idx int) error {
		raw := valid
		if idx%2 == 1 {
			raw = invalid
		}
		id, err := nationalid.Parse(raw)
		if err != nil {
			return err
		}
		_ = id.AgeAt(at)
		_ = id.Details()
		_ = id.Masked()
		return nil
	})

	assert.Equal(t, int32(32), result.Successes)
	assert.Equal(t, int32(32), result.Rejections)
	assert.Equal(t, int32(0), result.Errors)
}
