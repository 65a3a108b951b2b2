package models

// MenuView is the public projection of a menu row. Size carries the
// weight label ("big", "standard", ...) and Weight the free-form size
// description from the source data. The four nutrition fields are
// pointers so they can be dropped from the JSON body entirely for
// categories that never expose them; for every other category the keys
// are present even when the value is empty.
type MenuView struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Size          string  `json:"size"`
	Weight        string  `json:"weight"`
	Price         float64 `json:"price"`
	Anonce        string  `json:"anonce"`
	Calories      *string `json:"calories,omitempty"`
	Carbohydrates *string `json:"carbohydrates,omitempty"`
	Fats          *string `json:"fats,omitempty"`
	Proteins      *string `json:"proteins,omitempty"`
}

// HasNutrition reports whether entries of the given category expose
// nutrition values. Drinks and sauces never do.
func HasNutrition(category string) bool {
	return category != CategoryDrink && category != CategorySauce
}

// NewMenuView projects a menu entry with loaded associations into its
// API shape.
func NewMenuView(e MenuEntry) MenuView {
	view := MenuView{
		ID:       e.ID,
		Title:    e.Dish.Title,
		Category: e.Category.Name,
		Size:     e.Weight.Label,
		Weight:   e.WeightDesc,
		Price:    e.Price,
		Anonce:   e.Dish.Anonce,
	}
	if HasNutrition(e.Category.Name) {
		view.Calories = &e.Calories
		view.Carbohydrates = &e.Carbohydrates
		view.Fats = &e.Fats
		view.Proteins = &e.Proteins
	}
	return view
}
