// Package clock tracks in-game time. The clock only ever moves as a
// byproduct of completed simulation hours; nothing ticks on its own.
package clock

import "fmt"

// TimeManager holds the current hour of day (0-23).
type TimeManager struct {
	hour int
}

// New returns a clock set to startHour.
func New(startHour int) *TimeManager {
	return &TimeManager{hour: normalize(startHour)}
}

func normalize(h int) int {
	h %= 24
	if h < 0 {
		h += 24
	}
	return h
}

// Advance moves the clock forward by hours and returns how many midnights
// were crossed.
func (t *TimeManager) Advance(hours int) int {
	total := t.hour + hours
	days := total / 24
	t.hour = total % 24
	return days
}

// Hour returns the current hour of day.
func (t *TimeManager) Hour() int { return t.hour }

// IsBetween reports whether the current hour falls in [start, end).
// A start after the end wraps midnight: IsBetween(18, 8) covers 6pm-8am.
func (t *TimeManager) IsBetween(start, end int) bool {
	if start <= end {
		return t.hour >= start && t.hour < end
	}
	return t.hour >= start || t.hour < end
}

// IsDaytime reports 6am-6pm.
func (t *TimeManager) IsDaytime() bool { return t.IsBetween(6, 18) }

// IsNighttime is the complement of IsDaytime.
func (t *TimeManager) IsNighttime() bool { return !t.IsDaytime() }

// Period names the current stretch of the day.
func (t *TimeManager) Period() string {
	switch {
	case t.hour >= 6 && t.hour < 12:
		return "Morning"
	case t.hour >= 12 && t.hour < 18:
		return "Afternoon"
	case t.hour >= 18 && t.hour < 22:
		return "Evening"
	default:
		return "Night"
	}
}

// Format renders the hour as 24h "HH:00".
func (t *TimeManager) Format() string {
	return fmt.Sprintf("%02d:00", t.hour)
}

// Set jumps the clock to hour, discarding any partial progress.
func (t *TimeManager) Set(hour int) {
	t.hour = normalize(hour)
}
