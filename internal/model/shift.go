package model

import "fmt"

// Weekday identifies one of the five teaching days.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays fixes the iteration order shared by analytics and reporting, so
// per-day figures always come out Monday first.
var Weekdays = [5]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (day Weekday) String() string {
	if day < Monday || day > Friday {
		return fmt.Sprintf("Weekday(%d)", int(day))
	}
	return weekdayNames[day]
}

// Shift is a named time slot on one weekday that can fill a subject-requirement.
type Shift struct {
	Name     string
	Day      Weekday
	Interval Interval
}

// Overlaps reports whether both shifts collide: same weekday, overlapping
// intervals.
func (shift Shift) Overlaps(other Shift) bool {
	return shift.Day == other.Day && shift.Interval.Overlaps(other.Interval)
}

func (shift Shift) String() string {
	return fmt.Sprintf("%v %v %v", shift.Name, shift.Day, shift.Interval)
}

// Subject is a single subject-requirement: a slot in the weekly timetable that
// must be filled by exactly one of its alternative shifts. The same subject
// name may appear several times in an input to model independent requirements
// (a lecture and its lab, say), each carrying its own alternatives.
type Subject struct {
	Name   string
	Shifts []Shift
}
