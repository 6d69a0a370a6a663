package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Panupong-xD/SodiumTracker/models"
	"github.com/Panupong-xD/SodiumTracker/storage"
)

// SortFavoritesFirst returns a copy with favorited items pinned before the
// rest. Stable partition: relative order inside each group is untouched.
func SortFavoritesFirst(items []models.FoodItem) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if it.IsFavorite {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if !it.IsFavorite {
			out = append(out, it)
		}
	}
	return out
}

// FilterByName keeps items whose name contains the query, case-insensitive.
// A blank query keeps everything.
func FilterByName(items []models.FoodItem, query string) []models.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

var (
	ErrFoodNotFound = errors.New("food item not found")
)

// CatalogService owns food-catalog reads and mutations. Every mutation is a
// load-modify-persist of the whole catalog.
type CatalogService struct {
	store *storage.Store
}

func NewCatalogService(store *storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// List returns the catalog filtered by query, favorites first. Filtering
// always re-sorts so favorites stay pinned within filtered results.
func (s *CatalogService) List(ctx context.Context, query string) ([]models.FoodItem, error) {
	items, err := s.store.FoodItems(ctx)
	if err != nil {
		return nil, err
	}
	return SortFavoritesFirst(FilterByName(items, query)), nil
}

type AddFoodInput struct {
	Name     string `json:"name" binding:"required"`
	SodiumMg int    `json:"sodium" binding:"required"`
	Category string `json:"category"`
	ImageRef string `json:"image"`
}

func (in AddFoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if in.SodiumMg <= 0 {
		return fmt.Errorf("sodium must be a positive amount in mg")
	}
	return nil
}

// Add appends a custom item with a timestamp-derived id.
func (s *CatalogService) Add(ctx context.Context, in AddFoodInput, now time.Time) (models.FoodItem, error) {
	if err := in.validate(); err != nil {
		return models.FoodItem{}, err
	}
	items, err := s.store.FoodItems(ctx)
	if err != nil {
		return models.FoodItem{}, err
	}
	item := models.FoodItem{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Name:     strings.TrimSpace(in.Name),
		SodiumMg: in.SodiumMg,
		Category: in.Category,
		ImageRef: in.ImageRef,
		IsCustom: true,
	}
	if err := s.store.SaveFoodItems(ctx, append(items, item)); err != nil {
		return models.FoodItem{}, err
	}
	return item, nil
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	items, err := s.store.FoodItems(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return ErrFoodNotFound
	}
	return s.store.SaveFoodItems(ctx, kept)
}

// ToggleFavorite flips the favorite flag independently of any other edit.
func (s *CatalogService) ToggleFavorite(ctx context.Context, id string) (models.FoodItem, error) {
	items, err := s.store.FoodItems(ctx)
	if err != nil {
		return models.FoodItem{}, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].IsFavorite = !items[i].IsFavorite
			if err := s.store.SaveFoodItems(ctx, items); err != nil {
				return models.FoodItem{}, err
			}
			return items[i], nil
		}
	}
	return models.FoodItem{}, ErrFoodNotFound
}

// Find returns the catalog item with the given id.
func (s *CatalogService) Find(ctx context.Context, id string) (models.FoodItem, error) {
	items, err := s.store.FoodItems(ctx)
	if err != nil {
		return models.FoodItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.FoodItem{}, ErrFoodNotFound
}
