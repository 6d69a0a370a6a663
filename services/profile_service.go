package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Panupong-xD/SodiumTracker/models"
	"github.com/Panupong-xD/SodiumTracker/storage"
)

var ErrNoProfile = errors.New("no profile saved yet")

// ProfileService owns the single active profile. A save is always a full
// resubmission of the form; the recommended budget is recomputed every time.
type ProfileService struct {
	store *storage.Store
}

func NewProfileService(store *storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	p, ok, err := s.store.Profile(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	if !ok {
		return models.Profile{}, ErrNoProfile
	}
	return p, nil
}

// Save validates the submitted profile, recomputes the recommended sodium
// budget and overwrites the stored profile in place. Invalid input is
// rejected before any computation or write happens.
func (s *ProfileService) Save(ctx context.Context, p models.Profile) (models.Profile, error) {
	if err := ValidateProfile(p); err != nil {
		return models.Profile{}, err
	}
	p.RecommendedSodium = ComputeRecommendedSodium(p)
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// ValidateProfile enforces the profile form rules. The calculator itself is
// total and never sees input that fails here.
func ValidateProfile(p models.Profile) error {
	if p.Age.IsZero() {
		return fmt.Errorf("age is required")
	}
	if p.Age.Bucket == "" {
		if p.Age.Years <= 0 || p.Age.Years > 120 {
			return fmt.Errorf("age must be between 1 and 120")
		}
	} else if p.Age.ToBucket() == "" {
		return fmt.Errorf("age range is not recognized")
	}
	if p.Gender != models.GenderMale && p.Gender != models.GenderFemale {
		return fmt.Errorf("gender must be male or female")
	}
	if p.WeightKg <= 0 || p.WeightKg > 300 {
		return fmt.Errorf("weight must be between 0 and 300 kg")
	}
	if p.HeightCm <= 0 || p.HeightCm > 250 {
		return fmt.Errorf("height must be between 0 and 250 cm")
	}
	if !models.ValidKidneyStage(p.KidneyStage) {
		return fmt.Errorf("kidney stage is not recognized")
	}
	return nil
}
