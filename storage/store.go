package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Panupong-xD/SodiumTracker/models"
)

// Store layers typed accessors over a Gateway. It owns JSON encoding and
// decoding; a decode failure comes back as *CorruptStateError, not a crash.
// All mutations are full read-modify-write of the stored collection.
type Store struct {
	g Gateway
}

func NewStore(g Gateway) *Store { return &Store{g: g} }

// Gateway exposes the underlying gateway for migration and reset paths.
func (s *Store) Gateway() Gateway { return s.g }

// Initialize seeds the parts of storage that must exist before first use:
// an empty consumption history and the preset food catalog.
func (s *Store) Initialize(ctx context.Context) error {
	if _, ok, err := s.g.Get(ctx, KeyConsumptionHistory); err != nil {
		return err
	} else if !ok {
		if err := s.setJSON(ctx, KeyConsumptionHistory, []models.ConsumptionEvent{}); err != nil {
			return err
		}
	}
	if _, ok, err := s.g.Get(ctx, KeyFoodItems); err != nil {
		return err
	} else if !ok {
		if err := s.SaveFoodItems(ctx, models.PresetFoods()); err != nil {
			return err
		}
	}
	return nil
}

// SeedFoodCatalog overwrites the catalog with the preset list.
func (s *Store) SeedFoodCatalog(ctx context.Context) error {
	return s.SaveFoodItems(ctx, models.PresetFoods())
}

// Profile returns the active profile, or ok=false when none was saved yet.
func (s *Store) Profile(ctx context.Context) (models.Profile, bool, error) {
	var p models.Profile
	ok, err := s.getJSON(ctx, KeyProfile, &p)
	return p, ok, err
}

func (s *Store) SaveProfile(ctx context.Context, p models.Profile) error {
	return s.setJSON(ctx, KeyProfile, p)
}

func (s *Store) FoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if _, err := s.getJSON(ctx, KeyFoodItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SaveFoodItems(ctx context.Context, items []models.FoodItem) error {
	return s.setJSON(ctx, KeyFoodItems, items)
}

func (s *Store) ConsumptionHistory(ctx context.Context) ([]models.ConsumptionEvent, error) {
	var events []models.ConsumptionEvent
	if _, err := s.getJSON(ctx, KeyConsumptionHistory, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) AddConsumption(ctx context.Context, ev models.ConsumptionEvent) error {
	events, err := s.ConsumptionHistory(ctx)
	if err != nil {
		return err
	}
	return s.setJSON(ctx, KeyConsumptionHistory, append(events, ev))
}

func (s *Store) RemoveConsumptionByID(ctx context.Context, id string) error {
	events, err := s.ConsumptionHistory(ctx)
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	return s.setJSON(ctx, KeyConsumptionHistory, kept)
}

func (s *Store) ClearConsumptionHistory(ctx context.Context) error {
	return s.setJSON(ctx, KeyConsumptionHistory, []models.ConsumptionEvent{})
}

// ResetKey wipes a single key. Recovery path for corrupt state.
func (s *Store) ResetKey(ctx context.Context, key string) error {
	return s.g.Remove(ctx, key)
}

func (s *Store) getJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.g.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, &CorruptStateError{Key: key, Err: err}
	}
	return true, nil
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.g.Set(ctx, key, string(raw))
}
