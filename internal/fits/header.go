package fits

import (
	"strconv"
	"strings"
)

// Section is a rectangular pixel region, 0-based and half-open on both
// axes. X spans columns (NAXIS1), Y spans rows (NAXIS2).
type Section struct {
	X0, X1 int
	Y0, Y1 int
}

// Clip limits the section to a width×height array. The returned bool is
// false when clipping leaves an empty region on either axis.
func (s Section) Clip(width, height int) (Section, bool) {
	if s.X0 < 0 {
		s.X0 = 0
	}
	if s.Y0 < 0 {
		s.Y0 = 0
	}
	if s.X1 > width {
		s.X1 = width
	}
	if s.Y1 > height {
		s.Y1 = height
	}
	if s.X0 >= s.X1 || s.Y0 >= s.Y1 {
		return s, false
	}
	return s, true
}

// Dx returns the section width in pixels.
func (s Section) Dx() int { return s.X1 - s.X0 }

// Dy returns the section height in pixels.
func (s Section) Dy() int { return s.Y1 - s.Y0 }

// ParseSection parses a TRIMSEC/DATASEC-style section string of the form
// [c1:c2,r1:r2], where both ranges are 1-based and inclusive and the
// column range comes first. The result is converted to 0-based half-open
// coordinates.
//
// The all-zero section "[0:0,0:0]" is a conventional placeholder for "not
// set" and reports false, as do malformed or empty strings. Bounds are not
// validated here; callers clip against the actual array.
func ParseSection(s string) (Section, bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "'")
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Section{}, false
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Section{}, false
	}

	cols, ok := parseRange(parts[0])
	if !ok {
		return Section{}, false
	}
	rows, ok := parseRange(parts[1])
	if !ok {
		return Section{}, false
	}

	if cols[0] == 0 && cols[1] == 0 && rows[0] == 0 && rows[1] == 0 {
		return Section{}, false
	}

	return Section{
		X0: cols[0] - 1, X1: cols[1],
		Y0: rows[0] - 1, Y1: rows[1],
	}, true
}

func parseRange(s string) ([2]int, bool) {
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		return [2]int{}, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return [2]int{}, false
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return [2]int{}, false
	}
	return [2]int{a, b}, true
}

// LookupSection tries each candidate header key in order and returns the
// first value that parses as a section. A false result means no usable
// section was found; callers fall back to the full array.
func LookupSection(cards map[string]string, keys []string) (Section, bool) {
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value, ok := cards[key]
		if !ok {
			continue
		}
		if sec, ok := ParseSection(value); ok {
			return sec, true
		}
	}
	return Section{}, false
}
