package models

// Canonical weight labels. Pizzas come in big/medium/thin, snacks in
// big/medium, everything else at standard.
const (
	WeightBig      = "big"
	WeightMedium   = "medium"
	WeightThin     = "thin"
	WeightStandard = "standard"
)

// WeightLabels lists the canonical weight variants in seeding order.
var WeightLabels = []string{
	WeightBig,
	WeightMedium,
	WeightThin,
	WeightStandard,
}

// Weight is a named size/portion bucket, seeded once at first startup.
type Weight struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"uniqueIndex;not null" json:"label"`
}

func (Weight) TableName() string {
	return "weight_items"
}
