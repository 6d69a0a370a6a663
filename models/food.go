package models

// FoodItem is a catalog entry. Preset items keep their fixed catalog id;
// user-added items get a timestamp-derived id and IsCustom=true.
type FoodItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SodiumMg   int    `json:"sodium"`
	Category   string `json:"category,omitempty"`
	ImageRef   string `json:"image,omitempty"`
	IsCustom   bool   `json:"isCustom,omitempty"`
	IsFavorite bool   `json:"isFavorite"`
}
