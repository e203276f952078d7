// Package schedule loads subject lists from TOML schedule documents.
//
// A document maps each subject name to an array of tables; every table is one
// independent subject-requirement whose keys name the alternative shifts and
// whose values describe the slot as "<Weekday> <start>-><end>", with times
// given as "H:MM" or as a bare hour:
//
//	[[algebra]]
//	T1 = "Monday 9:00->11:00"
//	T2 = "Wednesday 14->16"
package schedule

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"github.com/shiftpick/shiftpick/internal/model"
)

// Loading failures form a closed set of kinds, told apart with errors.Is.
var (
	ErrSourceUnreadable  = errors.New("schedule source is unreadable")
	ErrSourceUnparseable = errors.New("schedule source is unparseable")
	ErrMalformedShift    = errors.New("malformed shift")
	ErrMalformedWeekday  = errors.New("malformed weekday")
	ErrMalformedTime     = errors.New("malformed time")
)

var weekdaysByName = map[string]model.Weekday{
	"Monday":    model.Monday,
	"Tuesday":   model.Tuesday,
	"Wednesday": model.Wednesday,
	"Thursday":  model.Thursday,
	"Friday":    model.Friday,
}

// Load reads and parses a TOML schedule file.
func Load(path string) ([]model.Subject, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return Parse(content)
}

// Parse extracts the subject list from a TOML schedule document. The first
// malformed record aborts the whole load; a partial subject list is never
// returned. Subject names and shift names are sorted so downstream enumeration
// does not depend on document map order; requirements sharing a subject name
// keep their document order.
func Parse(content []byte) ([]model.Subject, error) {
	var document map[string]any
	if err := toml.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnparseable, err)
	}

	var requirements map[string][]map[string]string
	if err := mapstructure.Decode(document, &requirements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnparseable, err)
	}

	subjects := make([]model.Subject, 0, len(requirements))
	for _, subjectName := range sortedKeys(requirements) {
		for _, shiftTable := range requirements[subjectName] {
			shifts := make([]model.Shift, 0, len(shiftTable))
			for _, shiftName := range sortedKeys(shiftTable) {
				shift, err := parseShift(shiftName, shiftTable[shiftName])
				if err != nil {
					return nil, fmt.Errorf("subject %q shift %q: %w", subjectName, shiftName, err)
				}
				shifts = append(shifts, shift)
			}

			subjects = append(subjects, model.Subject{
				Name:   subjectName,
				Shifts: shifts,
			})
		}
	}

	return subjects, nil
}

// parseShift converts a "<Weekday> <start>-><end>" value into a shift.
func parseShift(name, value string) (model.Shift, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return model.Shift{}, fmt.Errorf("%w: %q is not a \"<Weekday> <start>-><end>\" value", ErrMalformedShift, value)
	}

	day, ok := weekdaysByName[fields[0]]
	if !ok {
		return model.Shift{}, fmt.Errorf("%w: %q is not one of Monday through Friday", ErrMalformedWeekday, fields[0])
	}

	interval, err := parseInterval(fields[1])
	if err != nil {
		return model.Shift{}, err
	}

	return model.Shift{Name: name, Day: day, Interval: interval}, nil
}

func parseInterval(value string) (model.Interval, error) {
	parts := strings.Split(value, "->")
	if len(parts) != 2 {
		return model.Interval{}, fmt.Errorf("%w: %q is not a \"<start>-><end>\" range", ErrMalformedShift, value)
	}

	start, err := parseClockTime(parts[0])
	if err != nil {
		return model.Interval{}, err
	}
	end, err := parseClockTime(parts[1])
	if err != nil {
		return model.Interval{}, err
	}

	return model.Interval{Start: start, End: end}, nil
}

// parseClockTime accepts "H:MM" or a bare hour ("14" reads as 14:00). Values
// are converted, not range-checked: semantically odd times count as tolerated
// degenerate inputs rather than loading failures.
func parseClockTime(value string) (model.ClockTime, error) {
	hourText, minuteText, found := strings.Cut(value, ":")
	if !found {
		minuteText = "0"
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return model.ClockTime{}, fmt.Errorf("%w: invalid hour in %q", ErrMalformedTime, value)
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return model.ClockTime{}, fmt.Errorf("%w: invalid minute in %q", ErrMalformedTime, value)
	}

	return model.ClockTime{Hour: hour, Minute: minute}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
