package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "zero", duration: 0, want: "0s"},
		{name: "negative", duration: -time.Minute, want: "0s"},
		{name: "milliseconds", duration: 5 * time.Millisecond, want: "5ms"},
		{name: "seconds", duration: 45 * time.Second, want: "45s"},
		{name: "minutes", duration: 25 * time.Minute, want: "25m"},
		{name: "minutes and seconds", duration: 2*time.Minute + 10*time.Second, want: "2m10s"},
		{name: "hours", duration: 2 * time.Hour, want: "2h"},
		{name: "hours and minutes", duration: 90 * time.Minute, want: "1h30m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDurationShort(tc.duration)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
