package model

import "go.uber.org/zap"

// Result carries the outcome of one full enumeration sweep.
type Result struct {
	// Candidates is the size of the cartesian product, counting the
	// conflicting combinations as well.
	Candidates uint64
	// Valid holds the conflict-free timetables in enumeration order.
	Valid []Timetable
}

// Solver runs the enumerate-and-filter pipeline over a subject list.
type Solver interface {
	// Enumerates every combination of one shift per subject, discards the
	// conflicting ones and returns the survivors in enumeration order.
	Solve(subjects []Subject) Result

	// Independently re-checks a result: every valid timetable must assign
	// exactly one of each subject's own shifts, in subject order, without
	// conflicts.
	Verify(subjects []Subject, result Result) bool
}

// NewSolver builds a solver fanning the enumeration out over the given number
// of goroutines. Values below 2 solve sequentially. A nil logger disables
// logging.
func NewSolver(workers int, logger *zap.Logger) Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &exhaustiveSolver{
		workers: workers,
		logger:  logger,
	}
}
