package limb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormatDecimalRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"42",
		"123456789",
		"1234567890123456789", // spans a 9-digit block boundary
		"340282366920938463463374607431768211455",
	}
	for _, s := range cases {
		r := make([]uint32, 4)
		require.NoError(t, ParseString(u128, r, s))
		require.Equal(t, s, FormatDecimal(u128, r, false))
	}
}

func TestParseSignedDecimal(t *testing.T) {
	r := make([]uint32, 4)
	require.NoError(t, ParseString(i128, r, "-123456789012"))
	require.Equal(t, int64(-123456789012), ToInt64(i128, r))
	require.Equal(t, "-123456789012", FormatDecimal(i128, r, false))
}

func TestParseHexWithPrefix(t *testing.T) {
	r := make([]uint32, 4)
	require.NoError(t, ParseString(u128, r, "0xFF"))
	require.Equal(t, uint64(255), ToUint64(u128, r))
}

func TestParseOctalWithLeadingZero(t *testing.T) {
	r := make([]uint32, 4)
	require.NoError(t, ParseString(u128, r, "017"))
	require.Equal(t, uint64(15), ToUint64(u128, r))
}

func TestFormatRadixHex(t *testing.T) {
	r := make([]uint32, 4)
	SetUint64(u128, r, 255)
	require.Equal(t, "ff", FormatRadix(u128, r, 16, false, false))
	require.Equal(t, "0xff", FormatRadix(u128, r, 16, true, false))
}

func TestFormatRadixOctal(t *testing.T) {
	r := make([]uint32, 4)
	SetUint64(u128, r, 8)
	require.Equal(t, "10", FormatRadix(u128, r, 8, false, false))
	require.Equal(t, "010", FormatRadix(u128, r, 8, true, false))
}

func TestFormatRadixZero(t *testing.T) {
	r := make([]uint32, 4)
	require.Equal(t, "0", FormatRadix(u128, r, 16, false, false))
	require.Equal(t, "0", FormatRadix(u128, r, 8, false, false))
}

func TestParseEmptyAndMalformedFail(t *testing.T) {
	bad := []string{"", "-", "0x", "12a4", "0xGG"}
	r := make([]uint32, 4)
	for _, s := range bad {
		require.ErrorIs(t, ParseString(u128, r, s), ErrParseError, "input %q", s)
	}
}

func TestParseNegativeRejectedForUnsigned(t *testing.T) {
	r := make([]uint32, 4)
	require.ErrorIs(t, ParseString(u128, r, "-1"), ErrParseError)
}

func TestFormatShowPos(t *testing.T) {
	r := make([]uint32, 4)
	SetUint64(u128, r, 5)
	require.Equal(t, "+5", FormatDecimal(u128, r, true))
}
