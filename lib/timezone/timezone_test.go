package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input  string
		expect time.Time
		ok     bool
	}{
		{input: "12.10.2019.", expect: time.Date(2019, time.October, 12, 0, 0, 0, 0, Location), ok: true},
		{input: "Ponedjeljak 12.10.2020", expect: time.Date(2020, time.October, 12, 0, 0, 0, 0, Location), ok: true},
		{input: "1.3.2020.", expect: time.Date(2020, time.March, 1, 0, 0, 0, 0, Location), ok: true},
		{input: "31.02.2020.", ok: false},
		{input: "12.13.2020.", ok: false},
		{input: "", ok: false},
		{input: "danas", ok: false},
	}

	for _, test := range cases {
		date, ok := ParseDate(test.input)
		require.Equal(t, test.ok, ok, test.input)
		if test.ok {
			require.True(t, test.expect.Equal(date), "%s: expected %v, got %v", test.input, test.expect, date)
		}
	}
}

func TestNowInZagreb(t *testing.T) {
	require.Equal(t, Location, Now().Location())
}
