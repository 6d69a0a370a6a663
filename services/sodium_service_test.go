package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSodiumAmount(t *testing.T) {
	assert.Equal(t, "999 มก.", FormatSodiumAmount(999))
	assert.Equal(t, "1.0 กรัม", FormatSodiumAmount(1000))
	assert.Equal(t, "2.5 กรัม", FormatSodiumAmount(2500))
	assert.Equal(t, "0 มก.", FormatSodiumAmount(0))
}

func TestCalculatePercentage(t *testing.T) {
	assert.Equal(t, 50, CalculatePercentage(1000, 2000))
	assert.Equal(t, 75, CalculatePercentage(1500, 2000))
	// display caps at 100, classification keeps going
	assert.Equal(t, 100, CalculatePercentage(3000, 2000))
	assert.Equal(t, 150, ClassificationPercentage(3000, 2000))
	// no budget, no percentage
	assert.Equal(t, 0, CalculatePercentage(500, 0))
	assert.Equal(t, 0, ClassificationPercentage(500, -1))
}

func TestClassifySodiumStatus_Breakpoints(t *testing.T) {
	cases := []struct {
		pct      int
		severity string
	}{
		{0, SeverityWarning},
		{24, SeverityWarning},
		{25, SeverityCaution},
		{74, SeverityCaution},
		{75, SeverityGood}, // lower bound inclusive
		{114, SeverityGood},
		{115, SeverityCaution},
		{175, SeverityCaution},
		{176, SeverityCritical},
		{400, SeverityCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.severity, ClassifySodiumStatus(tc.pct).Severity, "pct %d", tc.pct)
	}
}

func TestClassifySodiumStatus_Labels(t *testing.T) {
	assert.Equal(t, "เหมาะสม", ClassifySodiumStatus(100).Label)
	assert.Equal(t, "สูงเกินไปมาก", ClassifySodiumStatus(200).Label)
}
