package services

import (
	"fmt"
	"math"
)

// FormatSodiumAmount renders a sodium amount with its Thai unit: grams with
// one decimal from 1000 mg up, integer milligrams below.
func FormatSodiumAmount(mg int) string {
	if mg >= 1000 {
		return fmt.Sprintf("%.1f กรัม", float64(mg)/1000.0)
	}
	return fmt.Sprintf("%d มก.", mg)
}

// CalculatePercentage returns the consumed share of the daily budget,
// rounded and capped at 100 for progress-bar width. A non-positive budget
// yields 0.
func CalculatePercentage(consumedMg, recommendedMg int) int {
	p := ClassificationPercentage(consumedMg, recommendedMg)
	if p > 100 {
		return 100
	}
	return p
}

// ClassificationPercentage is the uncapped variant feeding the status
// classification. Display and classification intentionally disagree above
// 100%: the progress bar saturates, the status keeps escalating.
func ClassificationPercentage(consumedMg, recommendedMg int) int {
	if recommendedMg <= 0 {
		return 0
	}
	return int(math.Round(float64(consumedMg) / float64(recommendedMg) * 100.0))
}

// Severity buckets for the day's intake status.
const (
	SeverityWarning  = "warning"
	SeverityCaution  = "caution"
	SeverityGood     = "good"
	SeverityCritical = "critical"
)

// SodiumStatus is the user-facing classification of a day's intake.
type SodiumStatus struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// ClassifySodiumStatus buckets an (uncapped) percentage of the daily budget.
// Lower bounds inclusive, upper bounds exclusive, final bucket open-ended.
func ClassifySodiumStatus(percentage int) SodiumStatus {
	switch {
	case percentage < 25:
		return SodiumStatus{Label: "น้อยเกินไป", Severity: SeverityWarning}
	case percentage < 75:
		return SodiumStatus{Label: "ค่อนข้างน้อย", Severity: SeverityCaution}
	case percentage < 115:
		return SodiumStatus{Label: "เหมาะสม", Severity: SeverityGood}
	case percentage <= 175:
		return SodiumStatus{Label: "สูงเกินไป", Severity: SeverityCaution}
	default:
		return SodiumStatus{Label: "สูงเกินไปมาก", Severity: SeverityCritical}
	}
}
