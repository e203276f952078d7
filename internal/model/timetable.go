package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Entry binds one subject-requirement to the shift chosen for it. Entries
// point into the subject list they were assembled from, so that list must
// outlive every timetable built over it.
type Entry struct {
	Subject *Subject
	Shift   Shift
}

// Timetable is one complete assignment of a chosen shift to every
// subject-requirement, in subject order.
type Timetable []Entry

// HasConflict reports whether any two entries fall on the same weekday with
// overlapping intervals. Entries are compared pairwise by position, so two
// entries carrying the same shift value still conflict with each other.
// TODO: This scan can be performance-optimized with a per-day sort-and-sweep if the subject count ever grows
func (timetable Timetable) HasConflict() bool {
	for i := 0; i < len(timetable)-1; i++ {
		for j := i + 1; j < len(timetable); j++ {
			// Actual conflict predicate
			if timetable[i].Shift.Overlaps(timetable[j].Shift) {
				return true
			}
		}
	}
	return false
}

// Label renders the "<subject> <shift>" pairs in timetable order.
func (timetable Timetable) Label() string {
	pairs := lo.Map(timetable, func(entry Entry, _ int) string {
		return fmt.Sprintf("%v %v", entry.Subject.Name, entry.Shift.Name)
	})
	return strings.Join(pairs, ", ")
}

// Constraint inspects a partially assembled timetable and reports whether the
// prefix may still grow into an acceptable candidate. Returning false abandons
// every candidate extending the prefix.
type Constraint func(prefix Timetable) bool

// ConflictFree rejects any prefix whose newest entry collides with an earlier
// one. Every pair is checked exactly once as the prefix grows, so the prefixes
// it admits are precisely those HasConflict would clear.
func ConflictFree(prefix Timetable) bool {
	if len(prefix) < 2 {
		return true
	}

	newest := prefix[len(prefix)-1]
	for _, entry := range prefix[:len(prefix)-1] {
		if entry.Shift.Overlaps(newest.Shift) {
			return false
		}
	}
	return true
}
