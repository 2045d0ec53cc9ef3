package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ShiftWindow is a start/end pair of fractional hours of the day (9.5 = 09:30)
type ShiftWindow struct {
	Start float64
	End   float64
}

// Bounds are the absolute instants of a shift window on a concrete local date
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Validate checks that both values are in [0, 24) and that Start < End
func (w ShiftWindow) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"start", w.Start},
		{"end", w.End},
	} {
		if math.IsNaN(f.value) || f.value < 0 || f.value >= 24 {
			return fmt.Errorf("%w: %s time must be within 0-24 hours", ErrInvalidInput, f.name)
		}
	}

	if w.Start >= w.End {
		return fmt.Errorf("%w: shift end must be later than its start", ErrInvalidInput)
	}

	return nil
}

// ResolveTomorrowBounds places the window on the local calendar date that follows
// nowUTC in loc. Offset transitions can invert the order of the two instants; that
// case is rejected.
func (w ShiftWindow) ResolveTomorrowBounds(loc *time.Location, nowUTC time.Time) (Bounds, error) {
	if err := w.Validate(); err != nil {
		return Bounds{}, err
	}

	localNow := nowUTC.In(loc)
	tomorrow := time.Date(localNow.Year(), localNow.Month(), localNow.Day()+1, 0, 0, 0, 0, loc)

	startH, startM := clock(w.Start)
	endH, endM := clock(w.End)

	b := Bounds{
		Start: time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), startH, startM, 0, 0, loc),
		End:   time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), endH, endM, 0, 0, loc),
	}

	if !b.End.After(b.Start) {
		return Bounds{}, fmt.Errorf("%w: shift end must be later than its start", ErrInvalidInput)
	}

	return b, nil
}

// FormatTime renders fractional hours as zero-padded HH:MM
func FormatTime(hours float64) string {
	h, m := clock(hours)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// clock splits fractional hours into hour and minute, rounding the fraction to the
// nearest minute. A fraction that rounds up to 60 carries into the hour.
func clock(hours float64) (int, int) {
	h := math.Floor(hours)
	m := int(math.Round((hours - h) * 60))
	if m == 60 {
		return int(h) + 1, 0
	}
	return int(h), m
}

// ParseHours accepts "9", "9.5", "9,5" or "09:30"
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty time", ErrInvalidInput)
	}

	if strings.Contains(s, ":") {
		t, err := time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid time %q, use HH:MM or hours like 9.5", ErrInvalidInput, s)
		}
		return float64(t.Hour()) + float64(t.Minute())/60, nil
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, use HH:MM or hours like 9.5", ErrInvalidInput, s)
	}
	return v, nil
}

// LoadTimezone resolves an IANA name, using fallback when name is empty
func LoadTimezone(name, fallback string) (*time.Location, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, name)
	}
	return loc, nil
}
