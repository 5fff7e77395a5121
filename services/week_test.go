package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekWindowCoversWholeWeek(t *testing.T) {
	// Week of Mon 2024-05-06 .. Sun 2024-05-12: every day of it maps to
	// the same window.
	wantStart := date(2024, time.May, 6)
	wantEnd := date(2024, time.May, 12)

	for d := 0; d < 7; d++ {
		eval := wantStart.AddDate(0, 0, d)
		start, end := WeekWindow(eval)
		assert.Equal(t, wantStart, start, "eval %s", eval)
		assert.Equal(t, wantEnd, end, "eval %s", eval)
	}
}

func TestWeekWindowAlwaysStartsMonday(t *testing.T) {
	eval := date(2024, time.January, 1)
	for d := 0; d < 60; d++ {
		start, end := WeekWindow(eval.AddDate(0, 0, d))
		assert.Equal(t, time.Monday, start.Weekday())
		assert.Equal(t, time.Sunday, end.Weekday())
		assert.Equal(t, start.AddDate(0, 0, 6), end)
	}
}

func TestWeekWindowIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.May, 8, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, time.May, 8, 23, 59, 59, 0, time.UTC)

	s1, e1 := WeekWindow(morning)
	s2, e2 := WeekWindow(night)
	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
}

func TestWeekWindowIsDeterministic(t *testing.T) {
	eval := date(2024, time.May, 8)
	s1, e1 := WeekWindow(eval)
	s2, e2 := WeekWindow(eval)
	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
}

func TestWeekWindowCrossesYearBoundary(t *testing.T) {
	// Wed 2025-01-01 belongs to the week starting Mon 2024-12-30.
	start, end := WeekWindow(date(2025, time.January, 1))
	assert.Equal(t, date(2024, time.December, 30), start)
	assert.Equal(t, date(2025, time.January, 5), end)
}
