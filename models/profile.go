package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Age buckets used by the recommendation multipliers.
const (
	AgeUnder18 = "<18"
	Age18To50  = "18-50"
	Age50To70  = "50-70"
	AgeOver70  = ">70"
)

// Age is a tagged variant: either an exact year count or a pre-bucketed
// range. Older persisted profiles carry a raw (sometimes stringified)
// integer, newer ones carry a bucket string; both shapes decode here so the
// rest of the code never has to care which revision wrote the profile.
type Age struct {
	Years  int    // valid when Bucket is empty and Years > 0
	Bucket string // one of the Age* constants, or empty
}

func AgeFromYears(years int) Age { return Age{Years: years} }
func AgeFromBucket(b string) Age { return Age{Bucket: b} }
func (a Age) IsZero() bool       { return a.Bucket == "" && a.Years == 0 }

// ToBucket collapses either representation into a bucket string. Unusable
// input yields an empty bucket; the calculator treats that conservatively.
func (a Age) ToBucket() string {
	if a.Bucket != "" {
		switch a.Bucket {
		case AgeUnder18, Age18To50, Age50To70, AgeOver70:
			return a.Bucket
		}
		return ""
	}
	switch y := a.Years; {
	case y <= 0:
		return ""
	case y < 18:
		return AgeUnder18
	case y <= 50:
		return Age18To50
	case y <= 70:
		return Age50To70
	default:
		return AgeOver70
	}
}

func (a Age) MarshalJSON() ([]byte, error) {
	if a.Bucket != "" {
		return json.Marshal(a.Bucket)
	}
	if a.Years > 0 {
		return json.Marshal(strconv.Itoa(a.Years))
	}
	return json.Marshal("")
}

func (a *Age) UnmarshalJSON(data []byte) error {
	// Raw number (earliest persisted shape).
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Age{Years: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("age: unsupported shape %s", string(data))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*a = Age{}
		return nil
	}
	if y, err := strconv.Atoi(s); err == nil {
		*a = Age{Years: y}
		return nil
	}
	*a = Age{Bucket: s}
	return nil
}

// Genders accepted by the profile form.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Kidney stages selectable on the profile form. 3a/3b are normalized to 3
// for the base-sodium lookup.
var KidneyStages = []string{"1", "2", "3a", "3b", "3", "4", "5", "5D"}

// Profile is the single active health profile. RecommendedSodium is derived
// and recomputed on every save, never edited directly.
type Profile struct {
	Age               Age     `json:"age"`
	Gender            string  `json:"gender"`
	WeightKg          float64 `json:"weight"`
	HeightCm          float64 `json:"height"`
	KidneyStage       string  `json:"kidneyStage"`
	RecommendedSodium int     `json:"recommendedSodium"`
}

func ValidKidneyStage(stage string) bool {
	for _, s := range KidneyStages {
		if s == stage {
			return true
		}
	}
	return false
}
