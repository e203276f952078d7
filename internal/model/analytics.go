package model

import "github.com/samber/lo"

// DurationAt folds the intervals of every chosen shift on the given weekday
// into a single bounding interval, in timetable order. ok is false when no
// shift occupies the day. The fold uses Merge, so a gap between two shifts on
// the same day counts as occupied time.
func (timetable Timetable) DurationAt(day Weekday) (Interval, bool) {
	intervals := lo.FilterMap(timetable, func(entry Entry, _ int) (Interval, bool) {
		return entry.Shift.Interval, entry.Shift.Day == day
	})
	if len(intervals) == 0 {
		return Interval{}, false
	}

	merged := lo.Reduce(intervals[1:], func(merged Interval, next Interval, _ int) Interval {
		return merged.Merge(next)
	}, intervals[0])
	return merged, true
}

// HasClassesAt reports whether at least one chosen shift falls on the day.
func (timetable Timetable) HasClassesAt(day Weekday) bool {
	return lo.SomeBy(timetable, func(entry Entry) bool {
		return entry.Shift.Day == day
	})
}

// TotalMinutes sums the merged per-day spans over the fixed weekday order,
// skipping unoccupied days.
func (timetable Timetable) TotalMinutes() int {
	return lo.SumBy(Weekdays[:], func(day Weekday) int {
		merged, ok := timetable.DurationAt(day)
		if !ok {
			return 0
		}
		return merged.Minutes()
	})
}

// ClassMinutes sums the raw interval of every chosen shift, without the
// per-day merge.
func (timetable Timetable) ClassMinutes() int {
	return lo.SumBy(timetable, func(entry Entry) int {
		return entry.Shift.Interval.Minutes()
	})
}

// WaitMinutes is the gap time: minutes inside the merged per-day spans not
// covered by any chosen shift. Overlapping shifts on one day can push it
// negative, matching the bounding-merge reading of DurationAt.
func (timetable Timetable) WaitMinutes() int {
	return timetable.TotalMinutes() - timetable.ClassMinutes()
}

// DaysWithClasses counts the weekdays occupied by at least one chosen shift.
func (timetable Timetable) DaysWithClasses() int {
	return lo.CountBy(Weekdays[:], timetable.HasClassesAt)
}
