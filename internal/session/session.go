// Package session answers whether the market is currently trading.
package session

import (
	"fmt"
	"time"
)

// Window is a trading window in minutes after local midnight. Both ends
// are inclusive, so 13:00-15:01 covers every minute up to 15:01:59.
type Window struct {
	Start int
	End   int
}

// DefaultWindows are the index futures sessions, 09:30-11:30 and
// 13:00-15:01.
var DefaultWindows = []Window{
	{Start: 9*60 + 30, End: 11*60 + 30},
	{Start: 13 * 60, End: 15*60 + 1},
}

// Clock reports whether a moment falls inside a trading session.
type Clock interface {
	InSession(now time.Time) bool
}

// Windows is a Clock backed by a fixed set of daily windows.
type Windows []Window

func (ws Windows) InSession(now time.Time) bool {
	minute := now.Hour()*60 + now.Minute()
	for _, w := range ws {
		if minute >= w.Start && minute <= w.End {
			return true
		}
	}
	return false
}

// Always is a Clock that is always in session.
type Always struct{}

func (Always) InSession(time.Time) bool { return true }

// ParseWindow parses "HH:MM-HH:MM".
func ParseWindow(s string) (Window, error) {
	var h1, m1, h2, m2 int
	if _, err := fmt.Sscanf(s, "%d:%d-%d:%d", &h1, &m1, &h2, &m2); err != nil {
		return Window{}, fmt.Errorf("parse session window %q: %w", s, err)
	}
	w := Window{Start: h1*60 + m1, End: h2*60 + m2}
	if h1 > 23 || h2 > 23 || m1 > 59 || m2 > 59 || h1 < 0 || h2 < 0 || m1 < 0 || m2 < 0 || w.End < w.Start {
		return Window{}, fmt.Errorf("parse session window %q: out of range", s)
	}
	return w, nil
}

// ParseWindows parses a list of "HH:MM-HH:MM" strings. An empty list
// yields DefaultWindows.
func ParseWindows(specs []string) (Windows, error) {
	if len(specs) == 0 {
		return Windows(DefaultWindows), nil
	}
	out := make(Windows, 0, len(specs))
	for _, s := range specs {
		w, err := ParseWindow(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}
