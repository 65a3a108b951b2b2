// Package importer populates an empty catalog from the pzz.by public API
// at first startup. Categories and weight variants come from fixed lists;
// dishes and menu entries are derived from the five remote listings. The
// import either completes or aborts startup: a half-seeded catalog would
// satisfy the emptiness guard forever and never be repaired.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultBaseURL is the production menu source.
const DefaultBaseURL = "https://pzz.by/api/v1"

// The source publishes prices in currency subunits.
const priceDivisor = 10000

// The source rejects requests without a browser User-Agent.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/98.0.4758.102 Safari/537.36"

// listingSpecs maps each canonical category to its listing path, in
// import order. Dish titles seen in an earlier listing win.
var listingSpecs = []struct {
	category string
	path     string
}{
	{models.CategoryPizza, "/pizzas?load=ingredients,filters&filter=meal_only:0&order=position:asc"},
	{models.CategorySnack, "/snacks?filter=meal_only:0&order=position:asc"},
	{models.CategoryDessert, "/desserts?filter=pizzeria_type:pizzeria&order=position:asc"},
	{models.CategoryDrink, "/drinks?filter=pizzeria_type:pizzeria&order=position:asc"},
	{models.CategorySauce, "/sauces"},
}

// Importer fetches the remote listings and seeds the catalog tables.
type Importer struct {
	db      *gorm.DB
	client  *http.Client
	baseURL string
}

// New creates an importer against the given menu source. An empty
// baseURL selects the production source.
func New(db *gorm.DB, baseURL string) *Importer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Importer{
		db:      db,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
	}
}

// Run seeds every empty catalog table and is a no-op on a populated
// database. It must finish before the HTTP surface starts serving.
func (imp *Importer) Run(ctx context.Context) error {
	if err := imp.seedFixedTables(); err != nil {
		return fmt.Errorf("seeding fixed tables: %w", err)
	}

	var dishCount, entryCount int64
	if err := imp.db.Model(&models.Dish{}).Count(&dishCount).Error; err != nil {
		return err
	}
	if err := imp.db.Model(&models.MenuEntry{}).Count(&entryCount).Error; err != nil {
		return err
	}
	if dishCount > 0 && entryCount > 0 {
		log.Info("Catalog already seeded, skipping menu import")
		return nil
	}

	listings, err := imp.fetchListings(ctx)
	if err != nil {
		return fmt.Errorf("fetching menu listings: %w", err)
	}

	return imp.db.Transaction(func(tx *gorm.DB) error {
		if dishCount == 0 {
			if err := seedDishes(tx, listings); err != nil {
				return err
			}
		}
		if entryCount == 0 {
			if err := seedEntries(tx, listings); err != nil {
				return err
			}
		}
		return nil
	})
}

// seedFixedTables inserts the canonical category and weight rows when
// their tables are empty.
func (imp *Importer) seedFixedTables() error {
	return imp.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			for _, name := range models.CategoryNames {
				if err := tx.Create(&models.Category{Name: name}).Error; err != nil {
					return err
				}
			}
			log.WithField("categories", len(models.CategoryNames)).Info("Seeded categories")
		}

		if err := tx.Model(&models.Weight{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			for _, label := range models.WeightLabels {
				if err := tx.Create(&models.Weight{Label: label}).Error; err != nil {
					return err
				}
			}
			log.WithField("weights", len(models.WeightLabels)).Info("Seeded weight variants")
		}
		return nil
	})
}

type listing struct {
	category string
	items    []sourceItem
}

func (imp *Importer) fetchListings(ctx context.Context) ([]listing, error) {
	listings := make([]listing, 0, len(listingSpecs))
	for _, spec := range listingSpecs {
		items, err := imp.fetch(ctx, spec.path)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", spec.category, err)
		}
		log.WithFields(log.Fields{
			"category": spec.category,
			"items":    len(items),
		}).Info("Fetched menu listing")
		listings = append(listings, listing{category: spec.category, items: items})
	}
	return listings, nil
}

func (imp *Importer) fetch(ctx context.Context, path string) ([]sourceItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imp.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := imp.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var envelope struct {
		Response struct {
			Data []sourceItem `json:"data"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	return envelope.Response.Data, nil
}

// seedDishes inserts one dish per distinct title across all listings.
// Announcement text and the two detail photos only exist for pizzas and
// snacks in the source data.
func seedDishes(tx *gorm.DB, listings []listing) error {
	seen := make(map[string]bool)
	total := 0
	for _, l := range listings {
		withDetails := l.category == models.CategoryPizza || l.category == models.CategorySnack
		for _, item := range l.items {
			if item.Title == "" {
				return fmt.Errorf("listing %s: item without a title", l.category)
			}
			if seen[item.Title] {
				continue
			}
			dish := models.Dish{
				Title:      item.Title,
				PhotoSmall: item.PhotoSmall,
			}
			if withDetails {
				dish.Anonce = item.Anonce
				dish.PhotoFirst = item.Photo1
				dish.PhotoSecond = item.Photo2
			}
			if err := tx.Create(&dish).Error; err != nil {
				return err
			}
			seen[item.Title] = true
			total++
		}
	}
	log.WithField("dishes", total).Info("Seeded dishes")
	return nil
}

// seedEntries derives the menu rows for every listing item: up to three
// variants for pizzas, up to two for snacks, exactly one standard row for
// everything else.
func seedEntries(tx *gorm.DB, listings []listing) error {
	refs, err := loadRefs(tx)
	if err != nil {
		return err
	}

	total := 0
	for _, l := range listings {
		categoryID, ok := refs.categories[l.category]
		if !ok {
			return fmt.Errorf("category %s not seeded", l.category)
		}
		for _, item := range l.items {
			variants, err := variantsFor(l.category, item)
			if err != nil {
				return fmt.Errorf("listing %s, item %q: %w", l.category, item.Title, err)
			}
			dishID, ok := refs.dishes[item.Title]
			if !ok {
				return fmt.Errorf("listing %s: no dish for title %q", l.category, item.Title)
			}
			for _, v := range variants {
				weightID, ok := refs.weights[v.label]
				if !ok {
					return fmt.Errorf("weight %s not seeded", v.label)
				}
				entry := models.MenuEntry{
					DishID:        dishID,
					CategoryID:    categoryID,
					WeightID:      weightID,
					WeightDesc:    v.desc,
					Price:         v.price,
					Calories:      v.calories,
					Carbohydrates: v.carbohydrates,
					Fats:          v.fats,
					Proteins:      v.proteins,
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
				total++
			}
		}
	}
	log.WithField("entries", total).Info("Seeded menu entries")
	return nil
}

type refTables struct {
	categories map[string]uint
	weights    map[string]uint
	dishes     map[string]uint
}

func loadRefs(tx *gorm.DB) (refTables, error) {
	refs := refTables{
		categories: make(map[string]uint),
		weights:    make(map[string]uint),
		dishes:     make(map[string]uint),
	}

	var categories []models.Category
	if err := tx.Find(&categories).Error; err != nil {
		return refs, err
	}
	for _, c := range categories {
		refs.categories[c.Name] = c.ID
	}

	var weights []models.Weight
	if err := tx.Find(&weights).Error; err != nil {
		return refs, err
	}
	for _, w := range weights {
		refs.weights[w.Label] = w.ID
	}

	var dishes []models.Dish
	if err := tx.Find(&dishes).Error; err != nil {
		return refs, err
	}
	for _, d := range dishes {
		refs.dishes[d.Title] = d.ID
	}
	return refs, nil
}
