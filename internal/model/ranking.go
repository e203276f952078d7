package model

import "github.com/samber/lo"

// RankedTimetable is a display-ready record for one reported timetable. All
// hour figures are whole hours, truncated.
type RankedTimetable struct {
	Rank       int
	Label      string
	TotalHours int
	DayHours   [5]int
	WaitHours  int
}

// Bucket holds every timetable tied for the minimal total duration among the
// valid timetables occupying exactly Days distinct weekdays.
type Bucket struct {
	Days       int
	Timetables []RankedTimetable
}

// RankBuckets groups valid timetables by their day count (1 through 5), keeps
// each group's co-minimal set by total duration and renders it for display.
// Ties are not broken: every timetable matching the minimum is ranked, in
// enumeration order, so the result is deterministic for a given input slice.
func RankBuckets(valid []Timetable) []Bucket {
	buckets := make([]Bucket, 0, len(Weekdays))

	for days := 1; days <= len(Weekdays); days++ {
		withDays := lo.Filter(valid, func(timetable Timetable, _ int) bool {
			return timetable.DaysWithClasses() == days
		})

		ranked := lo.Map(minSet(withDays), func(timetable Timetable, i int) RankedTimetable {
			return rankTimetable(i+1, timetable)
		})

		buckets = append(buckets, Bucket{Days: days, Timetables: ranked})
	}

	return buckets
}

// minSet keeps every timetable whose total duration equals the minimum of the
// slice, preserving order.
func minSet(timetables []Timetable) []Timetable {
	if len(timetables) == 0 {
		return nil
	}

	minimum := lo.Min(lo.Map(timetables, func(timetable Timetable, _ int) int {
		return timetable.TotalMinutes()
	}))

	return lo.Filter(timetables, func(timetable Timetable, _ int) bool {
		return timetable.TotalMinutes() == minimum
	})
}

func rankTimetable(rank int, timetable Timetable) RankedTimetable {
	record := RankedTimetable{
		Rank:       rank,
		Label:      timetable.Label(),
		TotalHours: timetable.TotalMinutes() / 60,
		WaitHours:  timetable.WaitMinutes() / 60,
	}

	for i, day := range Weekdays {
		if merged, ok := timetable.DurationAt(day); ok {
			record.DayHours[i] = merged.Minutes() / 60
		}
	}

	return record
}
