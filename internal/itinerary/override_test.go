package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabiplan/backend/internal/domain"
	"github.com/tabiplan/backend/internal/itinerary"
)

func TestApplyDayOverride_ReplacesTargetDay(t *testing.T) {
	day1 := dayOf(1, 2, 100)
	x := activity("x", 50)
	tl := timelineFixture(day1, domain.NewDay(2, nil, "kanto", []domain.Activity{x}))
	require.Equal(t, 50.0, tl.Days[1].TotalCost)

	y, z := activity("y", 30), activity("z", 20)
	got := itinerary.ApplyDayOverride(domain.DayOverride{
		ModifiedDay:        2,
		OverrideActivities: []domain.Activity{y, z},
	}, tl)

	require.Len(t, got.Days, 2)
	assert.Equal(t, day1, got.Days[0])
	assert.Equal(t, 2, got.Days[1].DayNumber)
	assert.Equal(t, "kanto", got.Days[1].Region)
	assert.Equal(t, []domain.Activity{y, z}, got.Days[1].Activities)
	assert.Equal(t, 50.0, got.Days[1].TotalCost)
}

func TestApplyDayOverride_MissingDay_ReturnsInput(t *testing.T) {
	tl := timelineFixture(dayOf(1, 2, 100), dayOf(2, 1, 50))

	got := itinerary.ApplyDayOverride(domain.DayOverride{
		ModifiedDay:        99,
		OverrideActivities: []domain.Activity{activity("q", 10)},
	}, tl)

	assert.Equal(t, tl, got)
}

func TestApplyDayOverride_NoDays_ReturnsInput(t *testing.T) {
	tl := domain.Timeline{TotalDuration: 2}

	got := itinerary.ApplyDayOverride(domain.DayOverride{ModifiedDay: 1}, tl)

	assert.Equal(t, tl, got)
}

func TestApplyDayOverride_EmptyList_ClearsDay(t *testing.T) {
	tl := timelineFixture(dayOf(1, 3, 100))

	got := itinerary.ApplyDayOverride(domain.DayOverride{ModifiedDay: 1, OverrideActivities: []domain.Activity{}}, tl)

	assert.NotNil(t, got.Days[0].Activities)
	assert.Empty(t, got.Days[0].Activities)
	assert.Zero(t, got.Days[0].TotalCost)
}

func TestApplyDayOverride_NonInterference(t *testing.T) {
	tl := timelineFixture(dayOf(1, 2, 10), dayOf(2, 3, 20), dayOf(3, 1, 30))

	for _, k := range []int{1, 2, 3} {
		got := itinerary.ApplyDayOverride(domain.DayOverride{
			ModifiedDay:        k,
			OverrideActivities: []domain.Activity{activity("n1", 7), activity("n2", 8)},
		}, tl)

		requireCostInvariant(t, got)
		for i, d := range got.Days {
			if d.DayNumber == k {
				assert.Equal(t, 15.0, d.TotalCost)
				continue
			}
			assert.Equal(t, tl.Days[i], d, "day %d must be untouched", d.DayNumber)
		}
		assert.Equal(t, tl.TotalDuration, got.TotalDuration)
		assert.Equal(t, tl.Regions, got.Regions)
		assert.Equal(t, tl.TravelStyles, got.TravelStyles)
		assert.Equal(t, tl.Season, got.Season)
	}
}

func TestApplyDayOverride_DoesNotAliasOverrideSlice(t *testing.T) {
	tl := timelineFixture(dayOf(1, 1, 10))
	acts := []domain.Activity{activity("n1", 7)}

	got := itinerary.ApplyDayOverride(domain.DayOverride{ModifiedDay: 1, OverrideActivities: acts}, tl)
	acts[0].EstimatedCost = 1000

	assert.Equal(t, 7.0, got.Days[0].Activities[0].EstimatedCost)
	assert.Equal(t, 7.0, got.Days[0].TotalCost)
}

func TestRecost_FixesStaleTotals(t *testing.T) {
	d := dayOf(1, 3, 10)
	d.TotalCost = 999
	tl := timelineFixture(d)

	got := itinerary.Recost(tl)

	assert.Equal(t, 30.0, got.Days[0].TotalCost)
	assert.Equal(t, 999.0, tl.Days[0].TotalCost)
}
