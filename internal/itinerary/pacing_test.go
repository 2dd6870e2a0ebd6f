package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabiplan/backend/internal/domain"
	"github.com/tabiplan/backend/internal/itinerary"
)

func intPtr(n int) *int { return &n }

func TestApplyPacing_TruncatesToCap(t *testing.T) {
	a, b, c := activity("a", 100), activity("b", 100), activity("c", 100)
	tl := timelineFixture(domain.NewDay(1, nil, "kansai", []domain.Activity{a, b, c}))
	require.Equal(t, 300.0, tl.Days[0].TotalCost)

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(2)})

	require.Len(t, got.Days, 1)
	assert.Equal(t, []domain.Activity{a, b}, got.Days[0].Activities)
	assert.Equal(t, 200.0, got.Days[0].TotalCost)
}

func TestApplyPacing_NoCap_ReturnsEqualTimeline(t *testing.T) {
	tl := timelineFixture(dayOf(1, 5, 10), dayOf(2, 3, 20))

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{})

	assert.Equal(t, tl, got)
}

func TestApplyPacing_NonPositiveCap_IsNoOp(t *testing.T) {
	tl := timelineFixture(dayOf(1, 5, 10))

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(0)})

	assert.Equal(t, tl, got)
}

func TestApplyPacing_NoDays_ReturnsInput(t *testing.T) {
	tl := domain.Timeline{TotalDuration: 3, Season: "winter"}

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(1)})

	assert.Equal(t, tl, got)
}

func TestApplyPacing_DayWithinCap_Unchanged(t *testing.T) {
	short := dayOf(1, 2, 10)
	long := dayOf(2, 6, 10)
	tl := timelineFixture(short, long)

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(3)})

	assert.Equal(t, short, got.Days[0])
	assert.Len(t, got.Days[1].Activities, 3)
	assert.Equal(t, 30.0, got.Days[1].TotalCost)
}

func TestApplyPacing_KeepsPrefixOnEveryDay(t *testing.T) {
	tl := timelineFixture(dayOf(1, 4, 15), dayOf(2, 1, 40), dayOf(3, 7, 5), dayOf(4, 0, 0))

	for _, n := range []int{1, 2, 3, 10} {
		got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(n)})

		require.Len(t, got.Days, len(tl.Days))
		for i, d := range got.Days {
			assert.LessOrEqual(t, len(d.Activities), n, "day %d", d.DayNumber)
			orig := tl.Days[i].Activities
			assert.Equal(t, orig[:len(d.Activities)], d.Activities, "day %d must keep a prefix", d.DayNumber)
		}
		requireCostInvariant(t, got)
	}
}

func TestApplyPacing_RestTimeAndPaceIgnored(t *testing.T) {
	tl := timelineFixture(dayOf(1, 4, 15))

	withExtras := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(2), RestTime: "2h", Pace: "relaxed"})
	plain := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(2)})

	assert.Equal(t, plain, withExtras)
}

func TestApplyPacing_DoesNotMutateInput(t *testing.T) {
	tl := timelineFixture(dayOf(1, 4, 15))
	before := tl.Clone()

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(2)})
	got.Days[0].Activities[0].Name = "changed"
	got.Regions[0] = "changed"

	assert.Equal(t, before, tl)
}

func TestApplyPacing_KeepsTimelineFields(t *testing.T) {
	tl := timelineFixture(dayOf(1, 4, 15))

	got := itinerary.ApplyPacing(tl, domain.PacingConfig{ActivitiesPerDay: intPtr(1)})

	assert.Equal(t, tl.TotalDuration, got.TotalDuration)
	assert.Equal(t, tl.Regions, got.Regions)
	assert.Equal(t, tl.TravelStyles, got.TravelStyles)
	assert.Equal(t, tl.Season, got.Season)
}
