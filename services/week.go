package services

import "time"

// WeekWindow returns the Monday-through-Sunday calendar span containing
// eval. Both ends are midnight in eval's location; membership is decided at
// calendar-day granularity, so the window covers all of Sunday. The result
// depends only on eval, never on the wall clock.
func WeekWindow(eval time.Time) (start, end time.Time) {
	day := time.Date(eval.Year(), eval.Month(), eval.Day(), 0, 0, 0, 0, eval.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}
