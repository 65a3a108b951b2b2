package models

// MenuEntry is one priced, sized, categorized offering of a Dish.
// Nutrition values are stored as strings; the empty string means
// "no value" and is the permanent state for drinks and sauces.
// CreatedBy is zero for rows produced by the seed importer.
type MenuEntry struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	DishID        uint     `gorm:"not null" json:"dish_id"`
	Dish          Dish     `json:"-"`
	CategoryID    uint     `gorm:"not null" json:"category_id"`
	Category      Category `json:"-"`
	WeightID      uint     `gorm:"not null" json:"weight_id"`
	Weight        Weight   `json:"-"`
	WeightDesc    string   `json:"weight_desc"`
	Price         float64  `gorm:"not null" json:"price"`
	Calories      string   `json:"calories"`
	Carbohydrates string   `json:"carbohydrates"`
	Fats          string   `json:"fats"`
	Proteins      string   `json:"proteins"`
	CreatedBy     uint     `json:"created_by"`
}

func (MenuEntry) TableName() string {
	return "menu"
}
