package services

import (
	"testing"

	"github.com/Panupong-xD/SodiumTracker/models"

	"github.com/stretchr/testify/assert"
)

func baselineProfile() models.Profile {
	return models.Profile{
		Age:         models.AgeFromBucket(models.Age18To50),
		Gender:      models.GenderMale,
		WeightKg:    70,
		HeightCm:    170,
		KidneyStage: "1",
	}
}

func TestComputeRecommendedSodium_Baseline(t *testing.T) {
	// stage 1 base 2300, all multipliers neutral (BMI 70/1.7² ≈ 24.2)
	assert.Equal(t, 2300, ComputeRecommendedSodium(baselineProfile()))
}

func TestComputeRecommendedSodium_StageTable(t *testing.T) {
	cases := map[string]int{
		"1":  2300,
		"2":  2000,
		"3":  1800,
		"4":  1700,
		"5":  1500,
		"5D": 1800,
	}
	for stage, want := range cases {
		p := baselineProfile()
		p.KidneyStage = stage
		assert.Equal(t, want, ComputeRecommendedSodium(p), "stage %s", stage)
	}
}

func TestComputeRecommendedSodium_Stage3VariantsMerge(t *testing.T) {
	a := baselineProfile()
	a.KidneyStage = "3a"
	b := baselineProfile()
	b.KidneyStage = "3b"
	c := baselineProfile()
	c.KidneyStage = "3"

	assert.Equal(t, ComputeRecommendedSodium(c), ComputeRecommendedSodium(a))
	assert.Equal(t, ComputeRecommendedSodium(a), ComputeRecommendedSodium(b))
}

func TestComputeRecommendedSodium_UnknownStageDefaults(t *testing.T) {
	p := baselineProfile()
	p.KidneyStage = ""
	// default base 2000, everything else neutral
	assert.Equal(t, 2000, ComputeRecommendedSodium(p))

	p.KidneyStage = "banana"
	assert.Equal(t, 2000, ComputeRecommendedSodium(p))
}

func TestComputeRecommendedSodium_AgeMultipliers(t *testing.T) {
	cases := []struct {
		age  models.Age
		want int
	}{
		{models.AgeFromBucket(models.AgeUnder18), 1840}, // 2300*0.8
		{models.AgeFromBucket(models.Age18To50), 2300},
		{models.AgeFromBucket(models.Age50To70), 2070}, // 2300*0.9
		{models.AgeFromBucket(models.AgeOver70), 1840},
		{models.AgeFromYears(17), 1840},
		{models.AgeFromYears(45), 2300},
		{models.AgeFromYears(50), 2300}, // boundary stays in 18-50
		{models.AgeFromYears(60), 2070},
		{models.AgeFromYears(71), 1840},
		{models.Age{}, 1840}, // missing age is conservative
		{models.AgeFromBucket("nonsense"), 1840},
	}
	for _, tc := range cases {
		p := baselineProfile()
		p.Age = tc.age
		assert.Equal(t, tc.want, ComputeRecommendedSodium(p), "age %+v", tc.age)
	}
}

func TestComputeRecommendedSodium_GenderMultiplier(t *testing.T) {
	p := baselineProfile()
	p.Gender = models.GenderFemale
	assert.Equal(t, 2070, ComputeRecommendedSodium(p)) // 2300*0.9
}

func TestComputeRecommendedSodium_BMIMultipliers(t *testing.T) {
	p := baselineProfile()

	p.WeightKg, p.HeightCm = 80, 170 // BMI ≈ 27.7
	assert.Equal(t, 2415, ComputeRecommendedSodium(p)) // 2300*1.05

	p.WeightKg, p.HeightCm = 90, 170 // BMI ≈ 31.1
	assert.Equal(t, 2530, ComputeRecommendedSodium(p)) // 2300*1.1

	// missing/implausible measurements are neutral
	p.WeightKg, p.HeightCm = 0, 170
	assert.Equal(t, 2300, ComputeRecommendedSodium(p))
	p.WeightKg, p.HeightCm = 70, 0
	assert.Equal(t, 2300, ComputeRecommendedSodium(p))
	p.WeightKg, p.HeightCm = 500, 170
	assert.Equal(t, 2300, ComputeRecommendedSodium(p))
}

// The multipliers bound the output: worst case 0.8*0.9*1.0, best case
// 1.0*1.0*1.1 around the stage base.
func TestComputeRecommendedSodium_MultiplierBounds(t *testing.T) {
	ages := []models.Age{
		models.AgeFromBucket(models.AgeUnder18),
		models.AgeFromBucket(models.Age18To50),
		models.AgeFromBucket(models.Age50To70),
		models.AgeFromBucket(models.AgeOver70),
		{},
	}
	genders := []string{models.GenderMale, models.GenderFemale, ""}
	bodies := []struct{ w, h float64 }{{70, 170}, {80, 170}, {95, 170}, {0, 0}}

	for stage, base := range map[string]int{"1": 2300, "2": 2000, "3": 1800, "4": 1700, "5": 1500, "5D": 1800} {
		lo := int(float64(base)*0.8*0.9*1.0 + 0.5)
		hi := int(float64(base)*1.0*1.0*1.1 + 0.5)
		for _, age := range ages {
			for _, g := range genders {
				for _, b := range bodies {
					p := models.Profile{Age: age, Gender: g, WeightKg: b.w, HeightCm: b.h, KidneyStage: stage}
					got := ComputeRecommendedSodium(p)
					assert.GreaterOrEqual(t, got, lo, "stage %s %+v", stage, p)
					assert.LessOrEqual(t, got, hi, "stage %s %+v", stage, p)
				}
			}
		}
	}
}
