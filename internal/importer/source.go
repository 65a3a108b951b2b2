package importer

import (
	"encoding/json"
	"fmt"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
)

// sourceItem is the union of the fields the five pzz.by listings carry.
// Pizzas use the *_thin_* nutrition names and per-variant weights, snacks
// plain per-variant names and amounts, desserts/drinks/sauces a single
// flat set. Unused fields simply stay zero for a given listing.
type sourceItem struct {
	Title       string `json:"title"`
	Anonce      string `json:"anonce"`
	Description string `json:"description"`
	PhotoSmall  string `json:"photo_small"`
	Photo1      string `json:"photo1"`
	Photo2      string `json:"photo2"`

	IsThin    json.Number `json:"is_thin"`
	HasMedium json.Number `json:"has_medium"`

	Price       json.Number `json:"price"`
	BigPrice    json.Number `json:"big_price"`
	MediumPrice json.Number `json:"medium_price"`
	ThinPrice   json.Number `json:"thin_price"`

	BigWeight    string `json:"big_weight"`
	MediumWeight string `json:"medium_weight"`
	ThinWeight   string `json:"thin_weight"`

	BigAmount    flexString `json:"big_amount"`
	MediumAmount flexString `json:"medium_amount"`

	BigThinCalories         flexString `json:"big_thin_calories"`
	BigThinCarbohydrates    flexString `json:"big_thin_carbohydrates"`
	BigThinFats             flexString `json:"big_thin_fats"`
	BigThinProteins         flexString `json:"big_thin_proteins"`
	MediumThinCalories      flexString `json:"medium_thin_calories"`
	MediumThinCarbohydrates flexString `json:"medium_thin_carbohydrates"`
	MediumThinFats          flexString `json:"medium_thin_fats"`
	MediumThinProteins      flexString `json:"medium_thin_proteins"`
	ThinThinCalories        flexString `json:"thin_thin_calories"`
	ThinThinCarbohydrates   flexString `json:"thin_thin_carbohydrates"`
	ThinThinFats            flexString `json:"thin_thin_fats"`
	ThinThinProteins        flexString `json:"thin_thin_proteins"`

	BigCalories          flexString `json:"big_calories"`
	BigCarbohydrates     flexString `json:"big_carbohydrates"`
	BigFats              flexString `json:"big_fats"`
	BigProteins          flexString `json:"big_proteins"`
	MediumCalories       flexString `json:"medium_calories"`
	MediumCarbohydrates  flexString `json:"medium_carbohydrates"`
	MediumFats           flexString `json:"medium_fats"`
	MediumProteins       flexString `json:"medium_proteins"`

	Calories      flexString `json:"calories"`
	Carbohydrates flexString `json:"carbohydrates"`
	Fats          flexString `json:"fats"`
	Proteins      flexString `json:"proteins"`
}

// flexString tolerates the source emitting a value as a JSON string,
// number or null. Nutrition values are stored as strings either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// flagSet interprets the source's 0/1 availability flags.
func flagSet(n json.Number) bool {
	s := n.String()
	return s != "" && s != "0"
}

// variant is one derived menu row for a listing item.
type variant struct {
	label         string
	desc          string
	price         float64
	calories      string
	carbohydrates string
	fats          string
	proteins      string
}

// variantsFor derives the menu rows a listing item expands into.
func variantsFor(category string, item sourceItem) ([]variant, error) {
	switch category {
	case models.CategoryPizza:
		return pizzaVariants(item)
	case models.CategorySnack:
		return snackVariants(item)
	default:
		return standardVariant(category, item)
	}
}

// pizzaVariants returns big and medium rows, plus a thin row when the
// item is flagged as available thin-crust.
func pizzaVariants(item sourceItem) ([]variant, error) {
	variants := make([]variant, 0, 3)

	big, err := newVariant(models.WeightBig, item.BigWeight, item.BigPrice,
		item.BigThinCalories, item.BigThinCarbohydrates, item.BigThinFats, item.BigThinProteins)
	if err != nil {
		return nil, err
	}
	variants = append(variants, big)

	medium, err := newVariant(models.WeightMedium, item.MediumWeight, item.MediumPrice,
		item.MediumThinCalories, item.MediumThinCarbohydrates, item.MediumThinFats, item.MediumThinProteins)
	if err != nil {
		return nil, err
	}
	variants = append(variants, medium)

	if flagSet(item.IsThin) {
		thin, err := newVariant(models.WeightThin, item.ThinWeight, item.ThinPrice,
			item.ThinThinCalories, item.ThinThinCarbohydrates, item.ThinThinFats, item.ThinThinProteins)
		if err != nil {
			return nil, err
		}
		variants = append(variants, thin)
	}
	return variants, nil
}

// snackVariants returns a big row, plus a medium row when the item is
// flagged as available in medium.
func snackVariants(item sourceItem) ([]variant, error) {
	variants := make([]variant, 0, 2)

	big, err := newVariant(models.WeightBig, string(item.BigAmount), item.BigPrice,
		item.BigCalories, item.BigCarbohydrates, item.BigFats, item.BigProteins)
	if err != nil {
		return nil, err
	}
	variants = append(variants, big)

	if flagSet(item.HasMedium) {
		medium, err := newVariant(models.WeightMedium, string(item.MediumAmount), item.MediumPrice,
			item.MediumCalories, item.MediumCarbohydrates, item.MediumFats, item.MediumProteins)
		if err != nil {
			return nil, err
		}
		variants = append(variants, medium)
	}
	return variants, nil
}

// standardVariant returns the single standard-weight row for desserts,
// drinks and sauces. Drinks and sauces carry no nutrition values, and
// sauces describe their size in the description field instead of the
// announcement.
func standardVariant(category string, item sourceItem) ([]variant, error) {
	desc := item.Anonce
	if category == models.CategorySauce {
		desc = item.Description
	}
	if models.HasNutrition(category) {
		v, err := newVariant(models.WeightStandard, desc, item.Price,
			item.Calories, item.Carbohydrates, item.Fats, item.Proteins)
		if err != nil {
			return nil, err
		}
		return []variant{v}, nil
	}
	v, err := newVariant(models.WeightStandard, desc, item.Price, "", "", "", "")
	if err != nil {
		return nil, err
	}
	return []variant{v}, nil
}

func newVariant(label, desc string, rawPrice json.Number, calories, carbohydrates, fats, proteins flexString) (variant, error) {
	price, err := rawPrice.Float64()
	if err != nil {
		return variant{}, fmt.Errorf("%s price %q: %w", label, rawPrice.String(), err)
	}
	return variant{
		label:         label,
		desc:          desc,
		price:         price / priceDivisor,
		calories:      string(calories),
		carbohydrates: string(carbohydrates),
		fats:          string(fats),
		proteins:      string(proteins),
	}, nil
}
