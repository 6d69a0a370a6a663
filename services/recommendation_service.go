package services

import (
	"math"

	"github.com/Panupong-xD/SodiumTracker/models"
	"github.com/Panupong-xD/SodiumTracker/utils"
)

// Base daily sodium budget in mg per normalized kidney stage.
var baseSodiumByStage = map[string]int{
	"1":  2300,
	"2":  2000,
	"3":  1800,
	"4":  1700,
	"5":  1500,
	"5D": 1800,
}

// defaultBaseSodium applies when the stage is absent or unrecognized.
// Deliberately below the stage-1 budget so a broken profile errs low.
const defaultBaseSodium = 2000

// ComputeRecommendedSodium derives the personalized daily sodium budget in
// mg from a profile. Total function: malformed fields degrade to
// conservative multipliers instead of failing, so it never rejects input.
func ComputeRecommendedSodium(p models.Profile) int {
	base := defaultBaseSodium
	if v, ok := baseSodiumByStage[NormalizeKidneyStage(p.KidneyStage)]; ok {
		base = v
	}
	result := float64(base) * ageMultiplier(p.Age) * genderMultiplier(p.Gender) * bmiMultiplier(p.WeightKg, p.HeightCm)
	return int(math.Round(result))
}

// NormalizeKidneyStage collapses the 3a/3b sub-variants into stage 3 before
// the base-sodium lookup. Source revisions disagreed on whether the
// sub-variants carry distinct budgets; the merged behavior is the one kept.
func NormalizeKidneyStage(stage string) string {
	if stage == "3a" || stage == "3b" {
		return "3"
	}
	return stage
}

// ageMultiplier maps the age bucket to its multiplier. The variant is
// normalized to a bucket here, at the calculator boundary, never inside the
// lookup. Unusable age falls back to the most conservative multiplier.
func ageMultiplier(age models.Age) float64 {
	switch age.ToBucket() {
	case models.Age18To50:
		return 1.0
	case models.Age50To70:
		return 0.9
	case models.AgeUnder18, models.AgeOver70:
		return 0.8
	default:
		return 0.8
	}
}

func genderMultiplier(gender string) float64 {
	if gender == models.GenderFemale {
		return 0.9
	}
	return 1.0
}

// bmiMultiplier raises the budget slightly for higher BMI. Missing or
// implausible weight/height is neutral.
func bmiMultiplier(weightKg, heightCm float64) float64 {
	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return 1.0
	}
	switch {
	case bmi < 25:
		return 1.0
	case bmi < 30:
		return 1.05
	default:
		return 1.1
	}
}
