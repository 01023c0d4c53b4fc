package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number is a lenient numeric field. Strings holding a number are accepted;
// anything else (null, garbage, NaN, Inf) decodes as zero instead of failing.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	v, _ := parseLenient(b)
	*n = Number(v)
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

// OptionalNumber is like Number but remembers whether a finite value was
// actually supplied.
type OptionalNumber struct {
	Value float64
	Valid bool
}

func (o *OptionalNumber) UnmarshalJSON(b []byte) error {
	v, ok := parseLenient(b)
	*o = OptionalNumber{Value: v, Valid: ok}
	return nil
}

func (o OptionalNumber) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func parseLenient(b []byte) (float64, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, false
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return 0, false
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Date is a lenient calendar field. Unparseable input is kept as Raw but
// reports as absent, so it never counts as a reached milestone.
type Date struct {
	Raw  string
	time time.Time
	ok   bool
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDate parses s with the accepted layouts. Date-only values are UTC midnight.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	d := Date{Raw: s}
	if s == "" {
		return d
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.time = t.UTC()
			d.ok = true
			return d
		}
	}
	return d
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.Raw)
}

// Set reports whether a non-empty value was supplied, parseable or not.
func (d Date) Set() bool {
	return d.Raw != ""
}

// Time returns the parsed instant and whether parsing succeeded.
func (d Date) Time() (time.Time, bool) {
	return d.time, d.ok
}

// ReachedBy reports whether the date is valid and not after now.
func (d Date) ReachedBy(now time.Time) bool {
	return d.ok && !d.time.After(now)
}

// After reports whether the date is valid and strictly after now.
func (d Date) After(now time.Time) bool {
	return d.ok && d.time.After(now)
}
