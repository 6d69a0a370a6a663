package storage

import (
	"context"
	"strconv"
)

// SchemaVersion is the shape of the blobs the current code writes.
// Version history:
//
//	0  whatever the earliest mobile builds persisted: raw integer age,
//	   food items without isFavorite, no version key
//	1  bucketed age strings, still no version key written
//	2  explicit isFavorite on every food item, version key present
const SchemaVersion = 2

// Migrate upgrades whatever shape is on disk to the current one, once, at
// load time. The decode step tolerates every historical shape (Age decodes
// both representations, missing booleans default to false); re-encoding
// writes the current shape back so consumers never see a legacy blob.
func Migrate(ctx context.Context, g Gateway) error {
	raw, ok, err := g.Get(ctx, KeySchemaVersion)
	if err != nil {
		return err
	}
	if ok {
		if v, err := strconv.Atoi(raw); err == nil && v >= SchemaVersion {
			return nil
		}
	}

	s := NewStore(g)

	if p, ok, err := s.Profile(ctx); err != nil {
		return err
	} else if ok {
		if err := s.SaveProfile(ctx, p); err != nil {
			return err
		}
	}

	if _, ok, err := g.Get(ctx, KeyFoodItems); err != nil {
		return err
	} else if ok {
		items, err := s.FoodItems(ctx)
		if err != nil {
			return err
		}
		if err := s.SaveFoodItems(ctx, items); err != nil {
			return err
		}
	}

	if _, ok, err := g.Get(ctx, KeyConsumptionHistory); err != nil {
		return err
	} else if ok {
		events, err := s.ConsumptionHistory(ctx)
		if err != nil {
			return err
		}
		if err := s.setJSON(ctx, KeyConsumptionHistory, events); err != nil {
			return err
		}
	}

	return g.Set(ctx, KeySchemaVersion, strconv.Itoa(SchemaVersion))
}
