package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/Panupong-xD/SodiumTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(id string, ts time.Time, sodium int) models.ConsumptionEvent {
	return models.ConsumptionEvent{
		ID:           id,
		FoodID:       "f" + id,
		FoodName:     "food " + id,
		SodiumAmount: sodium,
		Timestamp:    ts,
	}
}

func TestAggregate_WeeklyGapFill(t *testing.T) {
	today := time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)
	events := []models.ConsumptionEvent{
		event("1", today.AddDate(0, 0, -6), 500),
		event("2", today.AddDate(0, 0, -3), 700),
		event("3", today, 300),
		event("4", today, 200), // same day as 3, must sum
	}

	got := Aggregate(events, PeriodWeekly, today, 2000)

	require.Len(t, got.Labels, 7)
	assert.Equal(t, "12/3", got.Labels[0])
	assert.Equal(t, "18/3", got.Labels[6])

	require.Len(t, got.Series, 2)
	assert.Equal(t, []int{500, 0, 0, 700, 0, 0, 500}, got.Series[0])
	assert.Equal(t, []int{2000, 2000, 2000, 2000, 2000, 2000, 2000}, got.Series[1])

	// 4 empty days render as zero but stay out of the average
	require.NotNil(t, got.AverageDaily)
	assert.InDelta(t, (500.0+700.0+500.0)/3.0, *got.AverageDaily, 0.01)
	assert.Nil(t, got.AverageMonthly)
}

func TestAggregate_WeeklyNoEventsInWindow(t *testing.T) {
	today := time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)
	events := []models.ConsumptionEvent{
		event("old", today.AddDate(0, 0, -30), 900),
	}

	got := Aggregate(events, PeriodWeekly, today, 2000)

	assert.Empty(t, got.Labels)
	assert.Empty(t, got.Series)
	assert.Nil(t, got.AverageDaily)
}

func TestAggregate_MonthlyLabelsAndAverage(t *testing.T) {
	today := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC) // March has 31 days
	events := []models.ConsumptionEvent{
		event("1", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), 1200),
		event("2", time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC), 800),
		// outside the current month, must not appear
		event("3", time.Date(2026, 2, 28, 8, 0, 0, 0, time.UTC), 5000),
	}

	got := Aggregate(events, PeriodMonthly, today, 1800)

	require.Len(t, got.Labels, 31)
	require.Len(t, got.Series, 2)
	require.Len(t, got.Series[0], 31)

	// labels only on multiples of 5 and the final day
	for day := 1; day <= 31; day++ {
		if day%5 == 0 || day == 31 {
			assert.Equal(t, strconv.Itoa(day), got.Labels[day-1])
		} else {
			assert.Equal(t, "", got.Labels[day-1])
		}
	}

	assert.Equal(t, 1200, got.Series[0][1])
	assert.Equal(t, 800, got.Series[0][14])
	assert.Equal(t, 0, got.Series[0][27])
	assert.Equal(t, 1800, got.Series[1][0])

	require.NotNil(t, got.AverageDaily)
	assert.InDelta(t, 1000.0, *got.AverageDaily, 0.01)
}

func TestAggregate_YearlyBucketsAndProjection(t *testing.T) {
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) // leap year
	events := []models.ConsumptionEvent{
		event("1", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), 1000),
		event("2", time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), 500),
		event("3", time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC), 800),
		// previous year must not appear
		event("4", time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC), 9000),
	}

	got := Aggregate(events, PeriodYearly, today, 2000)

	require.Len(t, got.Labels, 12)
	assert.Equal(t, "ม.ค.", got.Labels[0])
	assert.Equal(t, "ธ.ค.", got.Labels[11])

	// yearly has no reference series
	require.Len(t, got.Series, 1)
	assert.Equal(t, 1500, got.Series[0][0])
	assert.Equal(t, 800, got.Series[0][2])
	assert.Equal(t, 0, got.Series[0][11])

	// recorded-days daily average projected to an average month: 366/12
	require.NotNil(t, got.AverageMonthly)
	assert.InDelta(t, (2300.0/3.0)*(366.0/12.0), *got.AverageMonthly, 0.01)
	assert.Nil(t, got.AverageDaily)
}

func TestAggregate_Idempotent(t *testing.T) {
	today := time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)
	events := []models.ConsumptionEvent{
		event("1", today.AddDate(0, 0, -2), 600),
		event("2", today, 400),
	}
	first := Aggregate(events, PeriodWeekly, today, 2000)
	second := Aggregate(events, PeriodWeekly, today, 2000)
	assert.Equal(t, first, second)
}

func TestAggregate_NoEvents(t *testing.T) {
	today := time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)
	for _, period := range []Period{PeriodWeekly, PeriodMonthly, PeriodYearly} {
		got := Aggregate(nil, period, today, 2000)
		assert.Empty(t, got.Labels, "period %s", period)
		assert.Empty(t, got.Series, "period %s", period)
		assert.Nil(t, got.AverageDaily, "period %s", period)
		assert.Nil(t, got.AverageMonthly, "period %s", period)
	}
}

func TestTodayTotal_UsesSameDayKey(t *testing.T) {
	today := time.Date(2026, 3, 18, 23, 30, 0, 0, time.UTC)
	events := []models.ConsumptionEvent{
		event("1", time.Date(2026, 3, 18, 0, 10, 0, 0, time.UTC), 500),
		event("2", time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC), 700),
		event("3", time.Date(2026, 3, 17, 23, 59, 0, 0, time.UTC), 900),
	}
	assert.Equal(t, 1200, TodayTotal(events, today))
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"weekly", "monthly", "yearly"} {
		p, err := ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, Period(s), p)
	}
	_, err := ParsePeriod("daily")
	assert.Error(t, err)
}
