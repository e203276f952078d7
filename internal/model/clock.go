package model

import "fmt"

// ClockTime is a wall-clock instant within a day. Values are not range-checked:
// out-of-range hours or minutes stay numerically consistent and simply carry
// through the arithmetic.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns the total minutes since midnight.
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before compares two clock times by their total minutes.
func (t ClockTime) Before(other ClockTime) bool {
	return t.Minutes() < other.Minutes()
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%v:%02d", t.Hour, t.Minute)
}

// Interval is a half-open time span [Start, End) within a single day.
type Interval struct {
	Start ClockTime
	End   ClockTime
}

// Minutes returns the length of the interval. An inverted interval (End before
// Start) yields a negative length.
func (interval Interval) Minutes() int {
	return interval.End.Minutes() - interval.Start.Minutes()
}

// Overlaps reports whether both intervals share at least one minute. The
// comparison is strict, so intervals that merely touch do not overlap.
func (interval Interval) Overlaps(other Interval) bool {
	return interval.Start.Minutes() < other.End.Minutes() && interval.End.Minutes() > other.Start.Minutes()
}

// Merge returns the bounding interval from the earlier start to the later end,
// both picked by clock order. Merging two disjoint intervals spans the gap
// between them, so the result can cover minutes neither input does.
func (interval Interval) Merge(other Interval) Interval {
	merged := interval
	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}
	if merged.End.Before(other.End) {
		merged.End = other.End
	}
	return merged
}

func (interval Interval) String() string {
	return fmt.Sprintf("%v->%v", interval.Start, interval.End)
}
