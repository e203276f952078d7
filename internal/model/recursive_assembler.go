package model

type recursiveAssembler struct {
	subjects []Subject
}

func (assembler *recursiveAssembler) Size() uint64 {
	size := uint64(1)
	for _, subject := range assembler.subjects {
		size *= uint64(len(subject.Shifts))
	}
	return size
}

func (assembler *recursiveAssembler) Assemble(constraints []Constraint, visit func(timetable Timetable)) {
	prefix := make(Timetable, 0, len(assembler.subjects))
	assembler.assemble(constraints, 0, prefix, visit)
}

func (assembler *recursiveAssembler) AssembleBranch(branch int, constraints []Constraint, visit func(timetable Timetable)) {
	// Entries must point into the shared subject list so branch runs compose
	// into the same timetables a full Assemble produces
	subject := &assembler.subjects[0]
	prefix := make(Timetable, 0, len(assembler.subjects))
	prefix = append(prefix, Entry{Subject: subject, Shift: subject.Shifts[branch]})

	if violates(constraints, prefix) {
		return
	}
	assembler.assemble(constraints, 1, prefix, visit)
}

func (assembler *recursiveAssembler) assemble(constraints []Constraint, currentSubject int, prefix Timetable, visit func(timetable Timetable)) {
	//** Base case: every subject holds a chosen shift
	if currentSubject >= len(assembler.subjects) {
		candidate := make(Timetable, len(prefix))
		copy(candidate, prefix)
		visit(candidate)
		return
	}

	//** Recursive case: try each alternative of the current subject
	subject := &assembler.subjects[currentSubject]
	for _, shift := range subject.Shifts {
		prefix = append(prefix, Entry{Subject: subject, Shift: shift})

		// Abandon the subtree as soon as a constraint is violated
		if !violates(constraints, prefix) {
			assembler.assemble(constraints, currentSubject+1, prefix, visit)
		}

		prefix = prefix[:len(prefix)-1]
	}
}

func violates(constraints []Constraint, prefix Timetable) bool {
	for _, constraint := range constraints {
		if !constraint(prefix) {
			return true
		}
	}
	return false
}
