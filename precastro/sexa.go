package precastro

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// Sexagesimal parsing and formatting for the catalog conventions: right
// ascensions as HH:MM:SS.SSS in hours, declinations and latitudes as
// ±DD:MM:SS.SS in degrees. Components may be separated by colons or spaces.

func splitSexa(s string) (neg bool, parts []float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil, fmt.Errorf("empty sexagesimal string")
	}
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ':' || r == ' ' })
	if len(fields) == 0 || len(fields) > 3 {
		return false, nil, fmt.Errorf("expected 1-3 sexagesimal components, got %d", len(fields))
	}
	parts = make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false, nil, fmt.Errorf("bad sexagesimal component %q", f)
		}
		if v < 0 {
			return false, nil, fmt.Errorf("bad sexagesimal component %q", f)
		}
		if i > 0 && v >= 60 {
			return false, nil, fmt.Errorf("sexagesimal component %q out of range", f)
		}
		parts[i] = v
	}
	for len(parts) < 3 {
		parts = append(parts, 0)
	}
	return neg, parts, nil
}

// ParseHours parses a sexagesimal right ascension and returns hours.
func ParseHours(s string) (float64, error) {
	neg, parts, err := splitSexa(s)
	if err != nil {
		return 0, fmt.Errorf("parse hours %q: %w", s, err)
	}
	if neg {
		return 0, fmt.Errorf("parse hours %q: negative right ascension", s)
	}
	if parts[0] >= 24 {
		return 0, fmt.Errorf("parse hours %q: hour component out of range", s)
	}
	return unit.NewRA(int(parts[0]), int(parts[1]), parts[2]).Hour(), nil
}

// ParseDegLat parses a sexagesimal declination or latitude and returns
// degrees in [-90, 90].
func ParseDegLat(s string) (float64, error) {
	neg, parts, err := splitSexa(s)
	if err != nil {
		return 0, fmt.Errorf("parse latitude %q: %w", s, err)
	}
	sign := byte('+')
	if neg {
		sign = '-'
	}
	deg := unit.NewAngle(sign, int(parts[0]), int(parts[1]), parts[2]).Deg()
	if deg < -90 || deg > 90 {
		return 0, fmt.Errorf("parse latitude %q: out of range", s)
	}
	return deg, nil
}

// FormatHours renders hours as HH:MM:SS with the given number of decimal
// places on the seconds.
func FormatHours(hours float64, places int) string {
	h, m, s := sexaSplit(math.Mod(math.Mod(hours, 24)+24, 24), places)
	return fmt.Sprintf("%02d:%02d:%0*.*f", h, m, secWidth(places), places, s)
}

// FormatDegLat renders degrees as ±DD:MM:SS with the given number of
// decimal places on the seconds.
func FormatDegLat(deg float64, places int) string {
	sign := "+"
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d, m, s := sexaSplit(deg, places)
	return fmt.Sprintf("%s%02d:%02d:%0*.*f", sign, d, m, secWidth(places), places, s)
}

func sexaSplit(v float64, places int) (int, int, float64) {
	scale := math.Pow(10, float64(places))
	// Work in rounded seconds so carrying propagates cleanly.
	total := math.Round(v * 3600 * scale)
	whole := int(total / scale)
	first := whole / 3600
	second := whole / 60 % 60
	sec := float64(whole%60) + (total-float64(whole)*scale)/scale
	return first, second, sec
}

func secWidth(places int) int {
	if places <= 0 {
		return 2
	}
	return places + 3 // two digits, the point, and the fraction
}
