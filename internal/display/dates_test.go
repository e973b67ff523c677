package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2024-01-05", "Jan 5, 2024"},
		{"iso date end of year", "2023-12-31", "Dec 31, 2023"},
		{"rfc3339 utc", "2024-03-09T10:15:00Z", "Mar 9, 2024"},
		{"rfc3339 offset keeps written day", "2024-01-05T23:30:00-05:00", "Jan 5, 2024"},
		{"rfc3339 nano", "2024-07-04T08:00:00.123Z", "Jul 4, 2024"},
		{"local datetime", "2024-02-29T13:45:00", "Feb 29, 2024"},
		{"datetime without seconds", "2024-02-29T13:45", "Feb 29, 2024"},
		{"space separated", "2024-11-02 09:00:00", "Nov 2, 2024"},
		{"slashes ymd", "2024/06/15", "Jun 15, 2024"},
		{"us mdy", "06/15/2024", "Jun 15, 2024"},
		{"already formatted", "Jan 5, 2024", "Jan 5, 2024"},
		{"long month", "September 1, 2025", "Sep 1, 2025"},
		{"surrounding whitespace", "  2024-01-05 ", "Jan 5, 2024"},
		{"garbage", "not a date", InvalidDate},
		{"empty", "", InvalidDate},
		{"impossible day", "2024-02-30", InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplayDate(tt.input))
		})
	}
}

func TestParseDisplayDate(t *testing.T) {
	got, err := ParseDisplayDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDisplayDate("yesterday")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.October, 15, 18, 0, 0, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "Oct 15, 2025", FormatDate(d))
}
