package domain

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "00:00"},
		{9, "09:00"},
		{9.5, "09:30"},
		{17.25, "17:15"},
		{23.75, "23:45"},
		{8.999, "09:00"},
		{12.0083, "12:00"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.hours), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.hours))
		})
	}
}

func TestFormatTime_WholeMinutes(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			hours := float64(h) + float64(m)/60
			require.Equal(t, fmt.Sprintf("%02d:%02d", h, m), FormatTime(hours))
		}
	}
}

func TestShiftWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		window  ShiftWindow
		wantErr string
	}{
		{name: "default window", window: ShiftWindow{Start: 9, End: 18}},
		{name: "whole day", window: ShiftWindow{Start: 0, End: 23.99}},
		{name: "negative start", window: ShiftWindow{Start: -1, End: 18}, wantErr: "start time must be within 0-24 hours"},
		{name: "end of day", window: ShiftWindow{Start: 9, End: 24}, wantErr: "end time must be within 0-24 hours"},
		{name: "not a number", window: ShiftWindow{Start: math.NaN(), End: 18}, wantErr: "start time must be within 0-24 hours"},
		{name: "equal bounds", window: ShiftWindow{Start: 9, End: 9}, wantErr: "shift end must be later than its start"},
		{name: "reversed bounds", window: ShiftWindow{Start: 18, End: 9}, wantErr: "shift end must be later than its start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShiftWindow_ResolveTomorrowBounds(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	t.Run("Should place the window on the next local date", func(t *testing.T) {
		// 00:00 on 2024-03-10 in Kyiv
		now := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)

		b, err := ShiftWindow{Start: 9, End: 18}.ResolveTomorrowBounds(kyiv, now)
		require.NoError(t, err)
		assert.True(t, b.Start.Equal(time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC)), b.Start)
		assert.True(t, b.End.Equal(time.Date(2024, 3, 11, 16, 0, 0, 0, time.UTC)), b.End)
	})

	t.Run("Should roll over the month", func(t *testing.T) {
		now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

		b, err := ShiftWindow{Start: 8, End: 20}.ResolveTomorrowBounds(time.UTC, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC), b.Start)
		assert.Equal(t, time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC), b.End)
	})

	t.Run("Should apply the summer offset on the transition day", func(t *testing.T) {
		now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)

		b, err := ShiftWindow{Start: 9, End: 18}.ResolveTomorrowBounds(kyiv, now)
		require.NoError(t, err)
		assert.True(t, b.End.After(b.Start))
		assert.True(t, b.Start.Equal(time.Date(2024, 3, 31, 6, 0, 0, 0, time.UTC)), b.Start)
		assert.True(t, b.End.Equal(time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)), b.End)
	})

	t.Run("Should reject a window inverted by the clock change", func(t *testing.T) {
		now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)

		// 03:30 does not exist on 2024-03-31 in Kyiv and normalizes past 04:00
		_, err := ShiftWindow{Start: 3.5, End: 4}.ResolveTomorrowBounds(kyiv, now)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should validate before resolving", func(t *testing.T) {
		_, err := ShiftWindow{Start: 18, End: 9}.ResolveTomorrowBounds(kyiv, time.Now())
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "9", want: 9},
		{input: "9.5", want: 9.5},
		{input: "17,25", want: 17.25},
		{input: "09:30", want: 9.5},
		{input: " 18:00 ", want: 18},
		{input: "", wantErr: true},
		{input: "nine", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "9:5x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHours(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTimezone(t *testing.T) {
	loc, err := LoadTimezone("America/New_York", "Europe/Kyiv")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	loc, err = LoadTimezone("", "Europe/Lisbon")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", loc.String())

	loc, err = LoadTimezone("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())

	_, err = LoadTimezone("Nowhere/City", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseDeliveryPolicy(t *testing.T) {
	policy, err := ParseDeliveryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DeliveryAbort, policy)

	policy, err = ParseDeliveryPolicy("continue")
	require.NoError(t, err)
	assert.Equal(t, DeliveryContinue, policy)

	_, err = ParseDeliveryPolicy("retry")
	require.ErrorIs(t, err, ErrInvalidInput)
}
