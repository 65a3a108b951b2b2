package models

// MenuInput is the write payload for dish+entry submissions. Price and
// the nutrition fields arrive as strings so the validation layer can
// report parse failures field by field; an empty nutrition string means
// "no value".
type MenuInput struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Weight        string `json:"weight"`
	WeightDesc    string `json:"weight_desc"`
	Price         string `json:"price"`
	Anonce        string `json:"anonce"`
	Calories      string `json:"calories"`
	Carbohydrates string `json:"carbohydrates"`
	Fats          string `json:"fats"`
	Proteins      string `json:"proteins"`
	PhotoSmall    string `json:"photo_small"`
	PhotoFirst    string `json:"photo_first"`
	PhotoSecond   string `json:"photo_second"`
}
