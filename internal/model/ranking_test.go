package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestRankBuckets(t *testing.T) {
	t.Run("Ties are all reported, in enumeration order", func(t *testing.T) {
		// Arrange: two timetables share the 240-minute minimum, one is longer
		valid := []Timetable{
			{entry("algebra", Shift{Name: "T1", Day: Monday, Interval: interval(8, 0, 12, 0)})},
			{entry("algebra", Shift{Name: "T2", Day: Monday, Interval: interval(9, 0, 13, 0)})},
			{entry("algebra", Shift{Name: "T3", Day: Monday, Interval: interval(8, 0, 14, 0)})},
		}

		// Act
		buckets := RankBuckets(valid)

		// Assert
		g := NewWithT(t)
		assert.Len(t, buckets, 5)
		assert.Equal(t, 1, buckets[0].Days)

		labels := lo.Map(buckets[0].Timetables, func(record RankedTimetable, _ int) string {
			return record.Label
		})
		g.Expect(labels).To(ConsistOf("algebra T1", "algebra T2"))
		g.Expect(labels).To(HaveLen(2))

		// Ranks are consecutive and 1-based, order follows enumeration
		assert.Equal(t, "algebra T1", buckets[0].Timetables[0].Label)
		for i, record := range buckets[0].Timetables {
			assert.Equal(t, i+1, record.Rank)
		}
	})

	t.Run("Timetables split into buckets by day count", func(t *testing.T) {
		oneDay := Timetable{entry("algebra", shiftOn(Monday, 9, 11))}
		twoDays := Timetable{
			entry("algebra", shiftOn(Monday, 9, 11)),
			entry("physics", shiftOn(Tuesday, 9, 11)),
		}

		buckets := RankBuckets([]Timetable{twoDays, oneDay})

		assert.Len(t, buckets[0].Timetables, 1)
		assert.Equal(t, oneDay.Label(), buckets[0].Timetables[0].Label)
		assert.Len(t, buckets[1].Timetables, 1)
		assert.Equal(t, twoDays.Label(), buckets[1].Timetables[0].Label)
		for _, bucket := range buckets[2:] {
			assert.Empty(t, bucket.Timetables)
		}
	})

	t.Run("Hour figures are truncated", func(t *testing.T) {
		// 250 total minutes report as 4 hours
		valid := []Timetable{
			{entry("algebra", Shift{Name: "T1", Day: Monday, Interval: interval(9, 0, 13, 10)})},
		}

		buckets := RankBuckets(valid)

		record := buckets[0].Timetables[0]
		assert.Equal(t, 4, record.TotalHours)
		assert.Equal(t, [5]int{4, 0, 0, 0, 0}, record.DayHours)
		assert.Equal(t, 0, record.WaitHours)
	})

	t.Run("Wait hours come from the per-day gaps", func(t *testing.T) {
		valid := []Timetable{
			{
				entry("algebra", shiftOn(Monday, 9, 10)),
				entry("physics", shiftOn(Monday, 12, 13)),
			},
		}

		buckets := RankBuckets(valid)

		record := buckets[0].Timetables[0]
		assert.Equal(t, 4, record.TotalHours)
		assert.Equal(t, 2, record.WaitHours)
	})

	t.Run("Deterministic across calls", func(t *testing.T) {
		valid := []Timetable{
			{entry("algebra", shiftOn(Monday, 9, 11))},
			{entry("algebra", shiftOn(Tuesday, 9, 11))},
		}

		assert.Equal(t, RankBuckets(valid), RankBuckets(valid))
	})
}

func TestMinSet(t *testing.T) {
	assert.Nil(t, minSet(nil))

	shortest := Timetable{entry("algebra", shiftOn(Monday, 9, 10))}
	kept := minSet([]Timetable{
		{entry("algebra", shiftOn(Monday, 9, 12))},
		shortest,
	})
	assert.Equal(t, []Timetable{shortest}, kept)
}
