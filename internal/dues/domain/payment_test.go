package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	p, err := ParsePeriod("03", "2024")
	require.NoError(t, err)
	require.Equal(t, Period{Month: 3, Year: 2024}, p)

	p, err = ParsePeriod("3", "2024")
	require.NoError(t, err)
	require.Equal(t, Period{Month: 3, Year: 2024}, p)

	for _, bad := range [][2]string{
		{"0", "2024"},
		{"13", "2024"},
		{"", "2024"},
		{"3", ""},
		{"3", "1980"},
		{"march", "2024"},
	} {
		_, err := ParsePeriod(bad[0], bad[1])
		require.ErrorIs(t, err, ErrInvalidPeriod, "month=%q year=%q", bad[0], bad[1])
	}
}

func TestParseAmountCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"120", 12000},
		{"120.50", 12050},
		{"120.5", 12050},
		{"0.99", 99},
		{" 75.00 ", 7500},
	}
	for _, tc := range cases {
		got, err := ParseAmountCents(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}

	for _, bad := range []string{"", "-5", "+5", "1.234", "twelve", "."} {
		_, err := ParseAmountCents(bad)
		require.ErrorIs(t, err, ErrInvalidAmount, "input %q", bad)
	}
}

func TestFormatAmountCents(t *testing.T) {
	t.Parallel()

	require.Equal(t, "120.50", FormatAmountCents(12050))
	require.Equal(t, "0.05", FormatAmountCents(5))
	require.Equal(t, "0.00", FormatAmountCents(0))
}
