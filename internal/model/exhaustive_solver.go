package model

import (
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type exhaustiveSolver struct {
	workers int
	logger  *zap.Logger
}

func (solver *exhaustiveSolver) Solve(subjects []Subject) Result {
	assembler := NewAssembler(subjects)
	started := time.Now()

	var valid []Timetable
	if solver.workers > 1 && len(subjects) > 0 && len(subjects[0].Shifts) > 0 {
		valid = solver.solveParallel(assembler, len(subjects[0].Shifts))
	} else {
		valid = solver.solveSequential(assembler)
	}

	result := Result{
		Candidates: assembler.Size(),
		Valid:      valid,
	}

	solver.logger.Debug("enumeration finished",
		zap.Uint64("candidates", result.Candidates),
		zap.Int("valid", len(result.Valid)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return result
}

func (solver *exhaustiveSolver) solveSequential(assembler Assembler) []Timetable {
	valid := make([]Timetable, 0)
	assembler.Assemble([]Constraint{ConflictFree}, func(timetable Timetable) {
		valid = append(valid, timetable)
	})
	return valid
}

// solveParallel deals the first subject's shift choices into contiguous
// blocks, one per worker. Branches only read the shared immutable subject
// list, so each goroutine enumerates its sub-product without synchronization;
// concatenating the blocks in order reproduces the sequential enumeration
// order exactly.
func (solver *exhaustiveSolver) solveParallel(assembler Assembler, branches int) []Timetable {
	workers := min(solver.workers, branches)

	type block struct {
		index int
		valid []Timetable
	}
	blocksChannel := make(chan block)

	for index := 0; index < workers; index++ {
		go func(index int) {
			from, to := blockBounds(branches, workers, index)

			valid := make([]Timetable, 0)
			for branch := from; branch < to; branch++ {
				assembler.AssembleBranch(branch, []Constraint{ConflictFree}, func(timetable Timetable) {
					valid = append(valid, timetable)
				})
			}

			blocksChannel <- block{index: index, valid: valid}
		}(index)
	}

	blocks := make([][]Timetable, workers)
	collectedBlocks := 0
	for completed := range blocksChannel {
		blocks[completed.index] = completed.valid

		// Check whether all blocks have been collected to properly close the channel
		if collectedBlocks++; collectedBlocks == workers {
			close(blocksChannel)
		}
	}

	return lo.Flatten(blocks)
}

// blockBounds splits branches into workers contiguous blocks, spreading the
// remainder over the leading blocks.
func blockBounds(branches, workers, index int) (from, to int) {
	size := branches / workers
	remainder := branches % workers
	from = index*size + min(index, remainder)
	to = from + size
	if index < remainder {
		to++
	}
	return from, to
}

func (solver *exhaustiveSolver) Verify(subjects []Subject, result Result) bool {
	for _, timetable := range result.Valid {
		//** One entry per subject, in subject order
		if len(timetable) != len(subjects) {
			return false
		}

		for i, entry := range timetable {
			if entry.Subject == nil || entry.Subject.Name != subjects[i].Name {
				return false
			}

			//** The chosen shift must be one of the subject's own alternatives
			chosen := entry.Shift
			contained := lo.ContainsBy(subjects[i].Shifts, func(shift Shift) bool {
				return shift == chosen
			})
			if !contained {
				return false
			}
		}

		//** No two chosen shifts may collide
		if timetable.HasConflict() {
			return false
		}
	}
	return true
}
