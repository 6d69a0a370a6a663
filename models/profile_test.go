package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge_ToBucket(t *testing.T) {
	cases := []struct {
		age  Age
		want string
	}{
		{AgeFromYears(10), AgeUnder18},
		{AgeFromYears(18), Age18To50},
		{AgeFromYears(50), Age18To50},
		{AgeFromYears(51), Age50To70},
		{AgeFromYears(70), Age50To70},
		{AgeFromYears(71), AgeOver70},
		{AgeFromYears(0), ""},
		{AgeFromBucket(Age18To50), Age18To50},
		{AgeFromBucket("wat"), ""},
		{Age{}, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.age.ToBucket(), "%+v", tc.age)
	}
}

func TestAge_JSONShapes(t *testing.T) {
	var a Age

	require.NoError(t, json.Unmarshal([]byte(`45`), &a))
	assert.Equal(t, 45, a.Years)

	require.NoError(t, json.Unmarshal([]byte(`"45"`), &a))
	assert.Equal(t, 45, a.Years)

	require.NoError(t, json.Unmarshal([]byte(`"50-70"`), &a))
	assert.Equal(t, Age50To70, a.Bucket)

	require.NoError(t, json.Unmarshal([]byte(`""`), &a))
	assert.True(t, a.IsZero())

	require.Error(t, json.Unmarshal([]byte(`{"years":45}`), &a))

	// years re-encode as a numeric string, buckets as themselves
	out, err := json.Marshal(AgeFromYears(45))
	require.NoError(t, err)
	assert.Equal(t, `"45"`, string(out))

	out, err = json.Marshal(AgeFromBucket(AgeOver70))
	require.NoError(t, err)
	assert.Equal(t, `">70"`, string(out))
}

func TestValidKidneyStage(t *testing.T) {
	for _, s := range KidneyStages {
		assert.True(t, ValidKidneyStage(s))
	}
	assert.False(t, ValidKidneyStage("6"))
	assert.False(t, ValidKidneyStage(""))
}
