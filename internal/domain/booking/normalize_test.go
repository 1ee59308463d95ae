//go:build unit

package booking_test

import (
	"testing"

	"studio-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEventTime(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "HH:MM is zero-padded to seconds", in: "14:30", want: "14:30:00"},
		{name: "HH:MM:SS passes through", in: "09:15:30", want: "09:15:30"},
		{name: "midnight", in: "00:00", want: "00:00:00"},
		{name: "last minute of the day", in: "23:59", want: "23:59:00"},
		{name: "surrounding whitespace is trimmed", in: " 14:30 ", want: "14:30:00"},
		{name: "empty resolves to the default", in: "", want: booking.DefaultEventTime},
		{name: "out-of-range hour resolves to the default", in: "25:00", want: booking.DefaultEventTime},
		{name: "out-of-range minute resolves to the default", in: "12:61", want: booking.DefaultEventTime},
		{name: "junk resolves to the default", in: "mid-afternoon", want: booking.DefaultEventTime},
		{name: "missing zero padding resolves to the default", in: "9:30", want: booking.DefaultEventTime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.NormalizeEventTime(c.in))
		})
	}
}

func TestNormalizeEventTimezone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "named zone passes through", in: "Europe/Lisbon", want: "Europe/Lisbon"},
		{name: "empty resolves to the default", in: "", want: booking.DefaultEventTimezone},
		{name: "whitespace-only resolves to the default", in: "   ", want: booking.DefaultEventTimezone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.NormalizeEventTimezone(c.in))
		})
	}
}
