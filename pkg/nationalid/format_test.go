package nationalid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	id, err := Parse(rawMaleCairo2001)
	require.NoError(t, err)

	assert.Equal(t, "30101010123456", id.String())
	assert.Equal(t, "3-010101-01-23456", id.Dashed())
	assert.Equal(t, "3 010101 01 23456", id.Spaced())
	assert.Equal(t, "[3][010101][01][23456]", id.Bracketed())
	assert.Equal(t, "301********56", id.Masked())
}

func TestMaskedHidesMiddleDigits(t *testing.T) {
	for _, raw := range []string{rawMaleCairo2001, rawMaleAlex1990, rawAbroad2005} {
		id, err := Parse(raw)
		require.NoError(t, err)

		masked := id.Masked()
		require.Len(t, masked, 13)
		assert.Equal(t, raw[:3], masked[:3])
		assert.Equal(t, raw[12:], masked[11:])
		assert.Equal(t, strings.Repeat("*", 8), masked[3:11])
	}
}

func TestDetailed(t *testing.T) {
	id, err := Parse(rawMaleCairo2001)
	require.NoError(t, err)

	out := id.Detailed()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)

	assert.Contains(t, lines[0], "30101010123456")
	assert.Contains(t, lines[1], "2000-2099")
	assert.Contains(t, lines[2], "2001-01-01")
	assert.Contains(t, lines[3], "Cairo")
	assert.Contains(t, lines[3], "القاهرة")
	assert.Contains(t, lines[4], "Greater Cairo")
	assert.Contains(t, lines[5], "2345")
	assert.Contains(t, lines[6], "Male")
	assert.Contains(t, lines[6], "ذكر")
}

func TestDetailedCenturyLabel(t *testing.T) {
	id, err := Parse(rawMaleAlex1990)
	require.NoError(t, err)
	assert.Contains(t, id.Detailed(), "1900-1999")
}
