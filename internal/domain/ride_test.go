package domain

import "testing"

func TestClockTime(t *testing.T) {
	testCases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:30", "09:30", true},
		{"09:30:45", "09:30", true},
		{"23:59:59", "23:59", true},
		{"9:30", "09:30", true},
		{"24:00", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ClockTime(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ClockTime(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}
