package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/Panupong-xD/SodiumTracker/models"
)

// Aggregation period for the dashboard chart.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	}
	return "", fmt.Errorf("period must be weekly, monthly or yearly")
}

// ChartData is the time-bucketed projection of the consumption log.
// Series[0] is the consumption series; for weekly and monthly a second
// constant series carries the recommended budget as a reference line.
type ChartData struct {
	Labels         []string `json:"labels"`
	Series         [][]int  `json:"series"`
	AverageDaily   *float64 `json:"averageDaily,omitempty"`
	AverageMonthly *float64 `json:"averageMonthly,omitempty"`
}

// Thai month abbreviations, January first.
var thaiMonths = []string{"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.", "ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค."}

// dayBucket is one calendar day's total.
type dayBucket struct {
	date  time.Time
	total int
}

// Aggregate projects the raw consumption log into the chart series for the
// requested period, anchored at today. Pure over its inputs; the clock
// comes in as a parameter.
func Aggregate(events []models.ConsumptionEvent, period Period, today time.Time, recommendedMg int) ChartData {
	buckets := groupByDay(events)

	switch period {
	case PeriodWeekly:
		return aggregateWeekly(buckets, today, recommendedMg)
	case PeriodMonthly:
		return aggregateMonthly(buckets, today, recommendedMg)
	case PeriodYearly:
		return aggregateYearly(buckets, today)
	}
	return ChartData{Labels: []string{}, Series: [][]int{}}
}

// DayKey is the daily bucket key: unpadded local year-month-day. Every
// consumer of daily totals must use this exact format, including the
// today's-consumption lookup, or the keys drift apart.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// TodayTotal sums today's consumption using the same key the aggregator
// buckets with.
func TodayTotal(events []models.ConsumptionEvent, today time.Time) int {
	key := DayKey(today)
	total := 0
	for _, ev := range events {
		if DayKey(ev.Timestamp) == key {
			total += ev.SodiumAmount
		}
	}
	return total
}

// ---------- period projections ----------

func aggregateWeekly(buckets map[string]dayBucket, today time.Time, recommendedMg int) ChartData {
	labels := make([]string, 0, 7)
	data := make([]int, 0, 7)
	recorded := make([]int, 0, 7)

	start := today.AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		labels = append(labels, fmt.Sprintf("%d/%d", d.Day(), int(d.Month())))
		if b, ok := buckets[DayKey(d)]; ok {
			data = append(data, b.total)
			recorded = append(recorded, b.total)
		} else {
			data = append(data, 0)
		}
	}
	if len(recorded) == 0 {
		return emptyChart()
	}

	out := ChartData{
		Labels: labels,
		Series: [][]int{data, constantSeries(recommendedMg, len(data))},
	}
	avg := round2(average(recorded))
	out.AverageDaily = &avg
	return out
}

func aggregateMonthly(buckets map[string]dayBucket, today time.Time, recommendedMg int) ChartData {
	year, month := today.Year(), today.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, today.Location()).Day()

	labels := make([]string, 0, daysInMonth)
	data := make([]int, 0, daysInMonth)
	recorded := make([]int, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		key := fmt.Sprintf("%d-%d-%d", year, int(month), day)
		if b, ok := buckets[key]; ok {
			data = append(data, b.total)
			recorded = append(recorded, b.total)
		} else {
			data = append(data, 0)
		}
		// Sparse labels keep the axis readable: multiples of 5 plus the
		// final day, blank otherwise.
		if day%5 == 0 || day == daysInMonth {
			labels = append(labels, strconv.Itoa(day))
		} else {
			labels = append(labels, "")
		}
	}
	if len(recorded) == 0 {
		return emptyChart()
	}

	out := ChartData{
		Labels: labels,
		Series: [][]int{data, constantSeries(recommendedMg, len(data))},
	}
	avg := round2(average(recorded))
	out.AverageDaily = &avg
	return out
}

func aggregateYearly(buckets map[string]dayBucket, today time.Time) ChartData {
	year := today.Year()
	months := make([]int, 12)
	recorded := make([]int, 0, len(buckets))

	for _, b := range buckets {
		if b.date.Year() != year {
			continue
		}
		months[int(b.date.Month())-1] += b.total
		recorded = append(recorded, b.total)
	}
	if len(recorded) == 0 {
		return emptyChart()
	}

	labels := make([]string, 12)
	copy(labels, thaiMonths)

	out := ChartData{Labels: labels, Series: [][]int{months}}
	// Project the recorded-days daily average onto an average month,
	// leap-year aware.
	avgMonthly := round2(average(recorded) * float64(daysInYear(year)) / 12.0)
	out.AverageMonthly = &avgMonthly
	return out
}

// ---------- internals ----------

func groupByDay(events []models.ConsumptionEvent) map[string]dayBucket {
	sorted := make([]models.ConsumptionEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	buckets := make(map[string]dayBucket)
	for _, ev := range sorted {
		key := DayKey(ev.Timestamp)
		b, ok := buckets[key]
		if !ok {
			b = dayBucket{date: ev.Timestamp}
		}
		b.total += ev.SodiumAmount
		buckets[key] = b
	}
	return buckets
}

func emptyChart() ChartData {
	return ChartData{Labels: []string{}, Series: [][]int{}}
}

func constantSeries(value, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = value
	}
	return s
}

func average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
