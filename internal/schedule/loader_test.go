package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftpick/shiftpick/internal/model"
)

func TestParse(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		// Arrange
		document := []byte(`
[[physics]]
L1 = "Monday 9:00->11:00"
L2 = "Wednesday 14->16"

[[algebra]]
T2 = "Tuesday 10:30->12:00"
T1 = "Monday 9->11"

[[algebra]]
Lab = "Friday 8:00->10:00"
`)

		// Act
		subjects, err := Parse(document)

		// Assert
		require.NoError(t, err)
		require.Len(t, subjects, 3)

		// Subjects come out sorted by name, same-name requirements keep
		// their document order
		assert.Equal(t, "algebra", subjects[0].Name)
		assert.Equal(t, "algebra", subjects[1].Name)
		assert.Equal(t, "physics", subjects[2].Name)

		// Shifts are sorted by name inside each requirement
		assert.Equal(t, []model.Shift{
			{
				Name:     "T1",
				Day:      model.Monday,
				Interval: model.Interval{Start: model.ClockTime{Hour: 9}, End: model.ClockTime{Hour: 11}},
			},
			{
				Name:     "T2",
				Day:      model.Tuesday,
				Interval: model.Interval{Start: model.ClockTime{Hour: 10, Minute: 30}, End: model.ClockTime{Hour: 12}},
			},
		}, subjects[0].Shifts)

		require.Len(t, subjects[1].Shifts, 1)
		assert.Equal(t, "Lab", subjects[1].Shifts[0].Name)

		// A bare hour reads as a full hour
		assert.Equal(t, model.ClockTime{Hour: 14}, subjects[2].Shifts[1].Interval.Start)
		assert.Equal(t, model.ClockTime{Hour: 16}, subjects[2].Shifts[1].Interval.End)
	})

	t.Run("Requirement without shifts is kept", func(t *testing.T) {
		subjects, err := Parse([]byte("[[algebra]]\n"))

		require.NoError(t, err)
		require.Len(t, subjects, 1)
		assert.Empty(t, subjects[0].Shifts)
	})

	t.Run("Empty document", func(t *testing.T) {
		subjects, err := Parse([]byte(""))

		require.NoError(t, err)
		assert.Empty(t, subjects)
	})

	t.Run("Broken TOML", func(t *testing.T) {
		subjects, err := Parse([]byte("not toml ["))

		assert.Nil(t, subjects)
		assert.ErrorIs(t, err, ErrSourceUnparseable)
	})

	t.Run("Structurally foreign document", func(t *testing.T) {
		// A scalar where an array of tables is expected
		subjects, err := Parse([]byte(`algebra = "Monday 9->11"`))

		assert.Nil(t, subjects)
		assert.ErrorIs(t, err, ErrSourceUnparseable)
	})

	t.Run("Malformed shift value", func(t *testing.T) {
		scenarios := []struct {
			name     string
			value    string
			expected error
		}{
			{"Missing time range", `"Monday"`, ErrMalformedShift},
			{"Too many tokens", `"Monday 9 11"`, ErrMalformedShift},
			{"Missing arrow", `"Monday 9-11"`, ErrMalformedShift},
			{"Unknown weekday", `"Funday 9->11"`, ErrMalformedWeekday},
			{"Weekend day", `"Saturday 9->11"`, ErrMalformedWeekday},
			{"Broken hour", `"Monday nine->11"`, ErrMalformedTime},
			{"Broken minute", `"Monday 9:xx->11"`, ErrMalformedTime},
		}

		for _, scenario := range scenarios {
			t.Run(scenario.name, func(t *testing.T) {
				subjects, err := Parse([]byte("[[algebra]]\nT1 = " + scenario.value + "\n"))

				assert.Nil(t, subjects)
				assert.ErrorIs(t, err, scenario.expected)

				// The failing record is named in the error
				assert.Contains(t, err.Error(), `subject "algebra" shift "T1"`)
			})
		}
	})

	t.Run("First malformed record aborts the load", func(t *testing.T) {
		document := []byte(`
[[algebra]]
T1 = "Monday 9->11"

[[physics]]
L1 = "Someday 9->11"
`)

		subjects, err := Parse(document)

		assert.Nil(t, subjects)
		assert.ErrorIs(t, err, ErrMalformedWeekday)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "schedule.toml")
		content := []byte("[[algebra]]\nT1 = \"Monday 9:00->11:00\"\n")
		require.NoError(t, os.WriteFile(path, content, 0666))

		// Act
		subjects, err := Load(path)

		// Assert
		require.NoError(t, err)
		require.Len(t, subjects, 1)
		assert.Equal(t, "algebra", subjects[0].Name)
	})

	t.Run("Missing file", func(t *testing.T) {
		subjects, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

		assert.Nil(t, subjects)
		assert.ErrorIs(t, err, ErrSourceUnreadable)
	})
}
