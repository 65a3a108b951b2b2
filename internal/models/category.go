package models

// Canonical category names. All category-dependent behavior (projection,
// seeding, the cheap/expensive pizza queries) compares against these
// constants, never against row ids.
const (
	CategoryPizza   = "pizza"
	CategorySnack   = "snack"
	CategoryDessert = "dessert"
	CategoryDrink   = "drink"
	CategorySauce   = "sauce"
)

// CategoryNames lists the canonical categories in seeding order.
var CategoryNames = []string{
	CategoryPizza,
	CategorySnack,
	CategoryDessert,
	CategoryDrink,
	CategorySauce,
}

// Category is a fixed menu section. The five canonical rows are seeded at
// first startup and never mutated afterwards.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
