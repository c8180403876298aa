// Package datekey canonicalizes timestamps into per-day grouping keys.
//
// Every place that groups or aligns records by day must go through this
// package; two different day-normalization rules for the same logical
// grouping is a correctness bug.
package datekey

import "time"

// Layout is the canonical key form. Lexical order on keys of this form
// matches chronological order.
const Layout = "2006-01-02"

// Key identifies one UTC calendar day.
type Key string

// FromTime normalizes a timestamp to its UTC calendar day.
func FromTime(t time.Time) Key {
	return Key(t.UTC().Format(Layout))
}

// Time parses the key back to midnight UTC of its day.
func (k Key) Time() (time.Time, error) {
	return time.Parse(Layout, string(k))
}

// Valid reports whether the key is a well-formed calendar day.
func (k Key) Valid() bool {
	_, err := k.Time()
	return err == nil
}

// Before reports whether k is an earlier day than other.
func (k Key) Before(other Key) bool {
	return k < other
}
