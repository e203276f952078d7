package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shiftpick/shiftpick/internal/model"
	"github.com/shiftpick/shiftpick/internal/report"
	"github.com/shiftpick/shiftpick/internal/schedule"
	"github.com/shiftpick/shiftpick/pkg/config"
	"github.com/shiftpick/shiftpick/pkg/logger"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the TOML schedule file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the report will be written; if empty, it'll be written into the Standard Output")
	workersPtr := flag.Int("workers", 0, "Number of goroutines enumerating candidates; overrides SOLVER_WORKERS when positive")
	waitHoursPtr := flag.Bool("wait-hours", false, "Append each timetable's wait hours to the report (also enabled by REPORT_WAIT_HOURS)")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("a schedule file must be specified")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *workersPtr > 0 {
		cfg.Solver.Workers = *workersPtr
	}
	if *waitHoursPtr {
		cfg.Report.WaitHours = true
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	runLogger := logr.With(zap.String("run_id", uuid.NewString()))

	// Extract subjects
	subjects, err := schedule.Load(filePath)
	if err != nil {
		runLogger.Fatal("cannot load schedule file", zap.String("file", filePath), zap.Error(err))
	}
	runLogger.Info("schedule loaded", zap.String("file", filePath), zap.Int("subjects", len(subjects)))

	// Solve
	solver := model.NewSolver(cfg.Solver.Workers, runLogger)

	before := time.Now()
	result := solver.Solve(subjects)
	elapsed := time.Since(before)

	// Verify the result before reporting it
	if !solver.Verify(subjects, result) {
		runLogger.Fatal("result verification failed")
	}

	// Render the report
	var buffer bytes.Buffer
	if err := report.Write(&buffer, report.Summarize(result), report.Options{WaitHours: cfg.Report.WaitHours}); err != nil {
		runLogger.Fatal("cannot render report", zap.Error(err))
	}

	// Verify outfile is empty, if so then write the report to the Standard Output
	if outFile == "" {
		fmt.Print(buffer.String())
	} else if err := os.WriteFile(outFile, buffer.Bytes(), 0666); err != nil {
		runLogger.Fatal("cannot write report to the output file", zap.String("file", outFile), zap.Error(err))
	}

	runLogger.Info("solve finished",
		zap.Uint64("candidates", result.Candidates),
		zap.Int("valid", len(result.Valid)),
		zap.Int("workers", cfg.Solver.Workers),
		zap.Duration("elapsed", elapsed),
	)
}
