package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/shiftpick/shiftpick/internal/model"
)

// Summary is the display-ready outcome of a solve.
type Summary struct {
	// Valid counts every conflict-free timetable found.
	Valid int
	// Buckets holds the ranked co-minimal timetables per day count.
	Buckets []model.Bucket
}

// Options tune the rendering.
type Options struct {
	// WaitHours appends each timetable's truncated wait hours.
	WaitHours bool
}

// Summarize ranks a solver result into its report form.
func Summarize(result model.Result) Summary {
	return Summary{
		Valid:   len(result.Valid),
		Buckets: model.RankBuckets(result.Valid),
	}
}

// Write renders the summary: the overall count of valid timetables, then one
// section per day-count bucket listing its co-minimal timetables with total
// hours and the Monday-first per-day hour breakdown.
func Write(w io.Writer, summary Summary, opts Options) error {
	if _, err := fmt.Fprintf(w, "Total possible timetables: %d\n", summary.Valid); err != nil {
		return err
	}

	for _, bucket := range summary.Buckets {
		if _, err := fmt.Fprintf(w, "\nBest timetables with %d days with classes:\n", bucket.Days); err != nil {
			return err
		}

		for _, record := range bucket.Timetables {
			line := fmt.Sprintf("%d. %q - %d hours (%s)", record.Rank, record.Label, record.TotalHours, joinHours(record.DayHours))
			if opts.WaitHours {
				line += fmt.Sprintf(" - %d wait hours", record.WaitHours)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func joinHours(hours [5]int) string {
	return strings.Join(lo.Map(hours[:], func(h int, _ int) string {
		return strconv.Itoa(h)
	}), "+")
}
