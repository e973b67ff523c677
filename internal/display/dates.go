package display

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InvalidDate is what FormatDisplayDate renders for input it cannot parse.
const InvalidDate = "Invalid Date"

// display layout: abbreviated month, day without padding, 4-digit year
const displayLayout = "Jan 2, 2006"

var ErrInvalidDate = errors.New("invalid date")

var dateFormats = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDisplayDate parses a calendar date or timestamp. The returned time
// keeps the offset given in the input; date-only input is midnight UTC.
func ParseDisplayDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// FormatDisplayDate renders value as "Jan 5, 2024", or InvalidDate.
// The calendar day is the one written in the input, never shifted to
// the local zone.
func FormatDisplayDate(value string) string {
	t, err := ParseDisplayDate(value)
	if err != nil {
		return InvalidDate
	}
	return FormatDate(t)
}

func FormatDate(t time.Time) string {
	return t.Format(displayLayout)
}
