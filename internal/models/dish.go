package models

// Dish is the name/description/photos identity of a menu product,
// independent of size or category pricing. A dish can be offered through
// several menu entries (one per size variant).
type Dish struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"uniqueIndex;not null" json:"title"`
	Anonce      string `json:"anonce"`
	PhotoSmall  string `json:"photo_small"`
	PhotoFirst  string `json:"photo_first"`
	PhotoSecond string `json:"photo_second"`
}

func (Dish) TableName() string {
	return "menu_items"
}
