package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Panupong-xD/SodiumTracker/models"
	"github.com/Panupong-xD/SodiumTracker/storage"
)

var (
	ErrEventNotFound   = errors.New("consumption event not found")
	ErrPastDayReadOnly = errors.New("only today's events can be deleted")
)

// TodaySummary is the dashboard headline: today's intake against the
// personal budget. Percentage is the display-capped value; Status derives
// from the uncapped one.
type TodaySummary struct {
	Date                 string       `json:"date"`
	ConsumedMg           int          `json:"consumed"`
	RecommendedMg        int          `json:"recommended"`
	Percentage           int          `json:"percentage"`
	ClassificationPct    int          `json:"classificationPercentage"`
	Status               SodiumStatus `json:"status"`
	FormattedConsumed    string       `json:"formattedConsumed"`
	FormattedRecommended string       `json:"formattedRecommended"`
}

// ConsumptionService owns the append-only consumption log.
type ConsumptionService struct {
	store   *storage.Store
	catalog *CatalogService
}

func NewConsumptionService(store *storage.Store, catalog *CatalogService) *ConsumptionService {
	return &ConsumptionService{store: store, catalog: catalog}
}

// Log records one consumption of the given catalog item. Requires a saved
// profile; the event snapshots name and sodium so later catalog edits never
// rewrite history. Timestamp is the moment of logging, not user-editable.
func (s *ConsumptionService) Log(ctx context.Context, foodID string, now time.Time) (models.ConsumptionEvent, error) {
	if _, ok, err := s.store.Profile(ctx); err != nil {
		return models.ConsumptionEvent{}, err
	} else if !ok {
		return models.ConsumptionEvent{}, ErrNoProfile
	}

	food, err := s.catalog.Find(ctx, foodID)
	if err != nil {
		return models.ConsumptionEvent{}, err
	}

	ev := models.ConsumptionEvent{
		ID:           strconv.FormatInt(now.UnixNano(), 10),
		FoodID:       food.ID,
		FoodName:     food.Name,
		SodiumAmount: food.SodiumMg,
		Timestamp:    now,
	}
	if err := s.store.AddConsumption(ctx, ev); err != nil {
		return models.ConsumptionEvent{}, err
	}
	return ev, nil
}

// Delete removes a single event, allowed only while its calendar date is
// still today.
func (s *ConsumptionService) Delete(ctx context.Context, id string, today time.Time) error {
	events, err := s.store.ConsumptionHistory(ctx)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if ev.ID != id {
			continue
		}
		if !IsDeletable(ev, today) {
			return ErrPastDayReadOnly
		}
		return s.store.RemoveConsumptionByID(ctx, id)
	}
	return ErrEventNotFound
}

func (s *ConsumptionService) Clear(ctx context.Context) error {
	return s.store.ClearConsumptionHistory(ctx)
}

// History returns the grouped, optionally name-filtered log for display.
func (s *ConsumptionService) History(ctx context.Context, query string, now time.Time) ([]HistorySection, error) {
	events, err := s.store.ConsumptionHistory(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCalendarDay(SearchHistory(events, query), now), nil
}

// Summary computes the today headline from current storage state.
func (s *ConsumptionService) Summary(ctx context.Context, now time.Time) (TodaySummary, error) {
	profile, ok, err := s.store.Profile(ctx)
	if err != nil {
		return TodaySummary{}, err
	}
	if !ok {
		return TodaySummary{}, ErrNoProfile
	}
	events, err := s.store.ConsumptionHistory(ctx)
	if err != nil {
		return TodaySummary{}, err
	}
	return BuildTodaySummary(events, profile.RecommendedSodium, now), nil
}

// Chart aggregates the log for the dashboard chart.
func (s *ConsumptionService) Chart(ctx context.Context, period Period, now time.Time) (ChartData, error) {
	profile, ok, err := s.store.Profile(ctx)
	if err != nil {
		return ChartData{}, err
	}
	if !ok {
		return ChartData{}, ErrNoProfile
	}
	events, err := s.store.ConsumptionHistory(ctx)
	if err != nil {
		return ChartData{}, err
	}
	return Aggregate(events, period, now, profile.RecommendedSodium), nil
}

// BuildTodaySummary is the pure core of Summary, shared with the realtime
// push path.
func BuildTodaySummary(events []models.ConsumptionEvent, recommendedMg int, now time.Time) TodaySummary {
	consumed := TodayTotal(events, now)
	classification := ClassificationPercentage(consumed, recommendedMg)
	return TodaySummary{
		Date:                 DayKey(now),
		ConsumedMg:           consumed,
		RecommendedMg:        recommendedMg,
		Percentage:           CalculatePercentage(consumed, recommendedMg),
		ClassificationPct:    classification,
		Status:               ClassifySodiumStatus(classification),
		FormattedConsumed:    FormatSodiumAmount(consumed),
		FormattedRecommended: FormatSodiumAmount(recommendedMg),
	}
}
