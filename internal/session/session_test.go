package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(hh, mm, ss int) time.Time {
	return time.Date(2025, 6, 10, hh, mm, ss, 0, time.Local)
}

func TestDefaultWindows(t *testing.T) {
	clock := Windows(DefaultWindows)

	testCases := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "before open", now: at(9, 29, 59), expected: false},
		{name: "open", now: at(9, 30, 0), expected: true},
		{name: "morning close minute", now: at(11, 30, 59), expected: true},
		{name: "lunch", now: at(11, 31, 0), expected: false},
		{name: "afternoon open", now: at(13, 0, 0), expected: true},
		{name: "close auction minute", now: at(15, 1, 30), expected: true},
		{name: "after close", now: at(15, 2, 0), expected: false},
		{name: "night", now: at(22, 0, 0), expected: false},
	}

	for _, tc := range testCases {
		require.Equalf(t, tc.expected, clock.InSession(tc.now), "%s", tc.name)
	}
}

func TestAlways(t *testing.T) {
	require.True(t, Always{}.InSession(at(3, 0, 0)))
}

func TestParseWindows(t *testing.T) {
	ws, err := ParseWindows(nil)
	require.NoError(t, err)
	require.Equal(t, Windows(DefaultWindows), ws)

	ws, err = ParseWindows([]string{"09:00-10:15", "21:00-23:00"})
	require.NoError(t, err)
	require.Equal(t, Windows{{Start: 540, End: 615}, {Start: 1260, End: 1380}}, ws)
	require.Equal(t, "09:00-10:15", ws[0].String())

	for _, bad := range []string{"9am-10am", "10:00-09:00", "24:00-25:00", "09:60-10:00"} {
		_, err := ParseWindows([]string{bad})
		require.Errorf(t, err, "expected %q to be rejected", bad)
	}
}
