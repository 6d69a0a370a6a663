package models

import "time"

// ConsumptionEvent is one logged instance of eating a food item. Name and
// sodium are denormalized snapshots taken at logging time so later catalog
// edits or deletes never rewrite history. Immutable once created, except
// for deletion of same-day events.
type ConsumptionEvent struct {
	ID           string    `json:"id"`
	FoodID       string    `json:"foodId"`
	FoodName     string    `json:"foodName"`
	SodiumAmount int       `json:"sodiumAmount"`
	Timestamp    time.Time `json:"timestamp"`
}
