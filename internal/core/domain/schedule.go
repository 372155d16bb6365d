package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is an offset from midnight.
type TimeOfDay time.Duration

const day = 24 * time.Hour

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), nil
		}
	}
	return 0, fmt.Errorf("%w: bad time of day %q", ErrInvalidSchedule, s)
}

// TimeOfDayOf returns the UTC time-of-day of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	t = t.UTC()
	y, m, d := t.Date()
	return TimeOfDay(t.Sub(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)))
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Weekdays is a set of days encoded as a bitmask indexed by time.Weekday.
type Weekdays uint8

var weekdayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// NewWeekdays builds a set from the given days.
func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w |= 1 << uint(d)
	}
	return w
}

// ParseWeekdays parses a comma separated list such as "mon,tue,wed".
func ParseWeekdays(s string) (Weekdays, error) {
	var w Weekdays
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		found := false
		for i, name := range weekdayNames {
			if part == name {
				w |= 1 << uint(i)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, part)
		}
	}
	return w, nil
}

// Has reports whether d is in the set.
func (w Weekdays) Has(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

// String renders the set in Monday-first order, e.g. "mon,tue,wed".
func (w Weekdays) String() string {
	var parts []string
	for i := 1; i <= 7; i++ {
		d := time.Weekday(i % 7)
		if w.Has(d) {
			parts = append(parts, weekdayNames[d])
		}
	}
	return strings.Join(parts, ",")
}

// DaypartingSchedule restricts the days and hours a campaign may run.
// Times are evaluated against UTC.
type DaypartingSchedule struct {
	ID          int64
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	DaysOfWeek  Weekdays
	Description string
}

// Validate rejects schedules that can never be evaluated sensibly.
func (s *DaypartingSchedule) Validate() error {
	switch {
	case s.StartTime < 0 || time.Duration(s.StartTime) >= day:
		return fmt.Errorf("%w: start time out of range", ErrInvalidSchedule)
	case s.EndTime < 0 || time.Duration(s.EndTime) >= day:
		return fmt.Errorf("%w: end time out of range", ErrInvalidSchedule)
	case s.StartTime == s.EndTime:
		return fmt.Errorf("%w: empty window", ErrInvalidSchedule)
	case s.DaysOfWeek == 0:
		return fmt.Errorf("%w: no days of week", ErrInvalidSchedule)
	}
	return nil
}

func (s *DaypartingSchedule) String() string {
	return fmt.Sprintf("%s %s-%s", s.DaysOfWeek, s.StartTime, s.EndTime)
}

// IsWithinWindow reports whether a campaign on schedule may run at now.
// A nil schedule never restricts. The window is half-open [start, end).
// A window with end before start wraps midnight and belongs to the day it
// opens on: the part after midnight is governed by the previous weekday.
func IsWithinWindow(schedule *DaypartingSchedule, now time.Time) bool {
	if schedule == nil {
		return true
	}
	now = now.UTC()
	tod := TimeOfDayOf(now)
	if schedule.StartTime <= schedule.EndTime {
		return schedule.DaysOfWeek.Has(now.Weekday()) &&
			tod >= schedule.StartTime && tod < schedule.EndTime
	}
	if tod >= schedule.StartTime {
		return schedule.DaysOfWeek.Has(now.Weekday())
	}
	if tod < schedule.EndTime {
		return schedule.DaysOfWeek.Has(now.Add(-day).Weekday())
	}
	return false
}
