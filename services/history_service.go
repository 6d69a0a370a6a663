package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Panupong-xD/SodiumTracker/models"
)

// HistorySection is one calendar day's worth of history, newest day first.
type HistorySection struct {
	Label  string                    `json:"label"`
	Events []models.ConsumptionEvent `json:"events"`
}

// GroupByCalendarDay partitions the log into per-day sections for display,
// newest first both across and within sections. Labels read "today",
// "yesterday", then day month year in Thai with a Buddhist-era year.
func GroupByCalendarDay(events []models.ConsumptionEvent, now time.Time) []HistorySection {
	sorted := make([]models.ConsumptionEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	sections := []HistorySection{}
	index := make(map[string]int)
	for _, ev := range sorted {
		key := DayKey(ev.Timestamp)
		i, ok := index[key]
		if !ok {
			i = len(sections)
			index[key] = i
			sections = append(sections, HistorySection{Label: FormatDayHeader(ev.Timestamp, now)})
		}
		sections[i].Events = append(sections[i].Events, ev)
	}
	return sections
}

// FormatDayHeader labels a calendar day relative to now.
func FormatDayHeader(t, now time.Time) string {
	if sameCalendarDay(t, now) {
		return "วันนี้"
	}
	if sameCalendarDay(t, now.AddDate(0, 0, -1)) {
		return "เมื่อวาน"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[int(t.Month())-1], t.Year()+543)
}

// IsDeletable reports whether an event may still be removed: only while its
// calendar date is still today. Past days are read-only history.
func IsDeletable(ev models.ConsumptionEvent, today time.Time) bool {
	return sameCalendarDay(ev.Timestamp, today)
}

// SearchHistory keeps events whose food name contains the query,
// case-insensitive. Blank query keeps everything.
func SearchHistory(events []models.ConsumptionEvent, query string) []models.ConsumptionEvent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return events
	}
	out := make([]models.ConsumptionEvent, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.FoodName), q) {
			out = append(out, ev)
		}
	}
	return out
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
