package model

// Assembler enumerates candidate timetables: every combination of one chosen
// shift per subject.
type Assembler interface {
	// Returns the number of candidates in the full cartesian product. A
	// subject without shifts empties the product; with no subjects the
	// product holds a single empty timetable.
	Size() uint64

	// Walks the cartesian product in lexicographic order (subject order,
	// with the last subject's choice varying fastest) and hands each
	// complete candidate to visit. Constraints are evaluated after every
	// placement; a violated prefix abandons its entire subtree.
	Assemble(constraints []Constraint, visit func(timetable Timetable))

	// Behaves like Assemble restricted to a single choice of the first
	// subject's shift, identified by its index. Visiting every branch in
	// index order reproduces Assemble exactly; disjoint branches can run
	// concurrently.
	AssembleBranch(branch int, constraints []Constraint, visit func(timetable Timetable))
}

func NewAssembler(subjects []Subject) Assembler {
	return &recursiveAssembler{
		subjects: subjects,
	}
}
