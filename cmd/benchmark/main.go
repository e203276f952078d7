package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shiftpick/shiftpick/internal/model"
)

type BenchmarkCase struct {
	Subjects     int
	Alternatives int
}

type BenchmarkResult struct {
	Case       BenchmarkCase
	Workers    int
	Candidates uint64
	Valid      int
	Duration   int64
}

func main() {
	cases := getCases()
	workerCounts := getWorkerCounts()
	results := make([]BenchmarkResult, 0, len(cases)*len(workerCounts))

	for _, benchmarkCase := range cases {
		subjects := syntheticSubjects(benchmarkCase.Subjects, benchmarkCase.Alternatives)

		for _, workers := range workerCounts {
			fmt.Printf("Benchmarking %v subjects with %v alternatives each on %v workers\n", benchmarkCase.Subjects, benchmarkCase.Alternatives, workers)

			solver := model.NewSolver(workers, nil)

			before := time.Now()
			result := solver.Solve(subjects)
			duration := time.Since(before).Milliseconds()

			if !solver.Verify(subjects, result) {
				log.Fatalf("verification failed for %v subjects with %v alternatives on %v workers", benchmarkCase.Subjects, benchmarkCase.Alternatives, workers)
			}

			results = append(results, BenchmarkResult{
				Case:       benchmarkCase,
				Workers:    workers,
				Candidates: result.Candidates,
				Valid:      len(result.Valid),
				Duration:   duration,
			})
		}
	}

	toCsv(results)
}

func getCases() []BenchmarkCase {
	return []BenchmarkCase{
		{Subjects: 4, Alternatives: 3},
		{Subjects: 6, Alternatives: 3},
		{Subjects: 8, Alternatives: 3},
		{Subjects: 6, Alternatives: 4},
		{Subjects: 8, Alternatives: 4},
		{Subjects: 10, Alternatives: 4},
	}
}

func getWorkerCounts() []int {
	return []int{1, 2, 4, 8}
}

// syntheticSubjects builds a deterministic schedule whose alternatives spread
// over the week yet still collide often enough to exercise the conflict
// filter: the j-th alternative of subject i occupies a two-hour slot on
// weekday (i+j)%5 starting at hour 8+2*((i+2*j)%5).
func syntheticSubjects(subjects, alternatives int) []model.Subject {
	result := make([]model.Subject, 0, subjects)

	for i := range subjects {
		shifts := make([]model.Shift, 0, alternatives)
		for j := range alternatives {
			day := model.Weekdays[(i+j)%len(model.Weekdays)]
			start := 8 + 2*((i+2*j)%5)

			shifts = append(shifts, model.Shift{
				Name: fmt.Sprintf("S%d", j+1),
				Day:  day,
				Interval: model.Interval{
					Start: model.ClockTime{Hour: start},
					End:   model.ClockTime{Hour: start + 2},
				},
			})
		}

		result = append(result, model.Subject{
			Name:   fmt.Sprintf("subject-%02d", i+1),
			Shifts: shifts,
		})
	}

	return result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Subjects", "Alternatives", "Candidates", "Valid", "Workers", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Case.Subjects),
			fmt.Sprintf("%d", result.Case.Alternatives),
			fmt.Sprintf("%d", result.Candidates),
			fmt.Sprintf("%d", result.Valid),
			fmt.Sprintf("%d", result.Workers),
			fmt.Sprintf("%d", result.Duration),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
