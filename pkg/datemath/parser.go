package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout of calendar dates accepted on the wire.
const ISODate = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Parser resolves calendar dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of the calendar day baseTime falls on in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) time.Time {
	return p.startOfDay(baseTime)
}

// ParseDate parses an ISO-8601 calendar date ("2024-05-01"). A full RFC 3339
// timestamp is also accepted and truncated to the date written in it.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	return ParseDate(value)
}

// ParseDate is the timezone-independent form of Parser.ParseDate. The
// returned value is midnight UTC of the parsed calendar date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(ISODate, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DaysBetween returns the number of calendar days from `from` to `to`,
// comparing the wall-clock dates only. Negative when `to` is earlier.
// Works on Unix seconds so spans wider than time.Duration stay exact.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
