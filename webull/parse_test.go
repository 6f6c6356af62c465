package webull

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain", in: "09/19/2025 09:30:00", want: "2025-09-19T09:30:00Z", wantOK: true},
		{name: "timezone token stripped", in: "09/19/2025 09:30:00 EDT", want: "2025-09-19T09:30:00Z", wantOK: true},
		{name: "single digit month and day", in: "9/5/2025 16:00:01", want: "2025-09-05T16:00:01Z", wantOK: true},
		{name: "surrounding whitespace", in: "  09/19/2025 09:30:00 ET ", want: "2025-09-19T09:30:00Z", wantOK: true},
		{name: "empty", in: ""},
		{name: "blank", in: "   "},
		{name: "date only", in: "09/19/2025"},
		{name: "iso format rejected", in: "2025-09-19 09:30:00"},
		{name: "long trailing token not a timezone", in: "09/19/2025 09:30:00 AMERICA"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseTime(tc.in)
			if !tc.wantOK {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			want, err := time.Parse(time.RFC3339, tc.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v want %v", got, want)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	testCases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "2.50", want: "2.5", wantOK: true},
		{in: "@1,234.50", want: "1234.5", wantOK: true},
		{in: " 3 ", want: "3", wantOK: true},
		{in: "-0.01", want: "-0.01", wantOK: true},
		{in: ""},
		{in: "   "},
		{in: "abc"},
		{in: "@"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseDecimal(tc.in)
			if !tc.wantOK {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
