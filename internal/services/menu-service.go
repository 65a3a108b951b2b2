package services

import (
	"errors"
	"sort"
	"strconv"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"gorm.io/gorm"
)

// MenuService provides access to the menu catalog. Dish and MenuEntry
// rows are always written together: a create inserts both, an update
// touches both, and deleting the last entry of a dish removes the dish
// in the same transaction.
type MenuService interface {
	// ListMenu retrieves the whole menu, projected and sorted by category name.
	ListMenu() ([]models.MenuView, error)
	// ListCategory retrieves the entries of one category in storage order.
	ListCategory(name string) ([]models.MenuView, error)
	// ExtremalPizzas retrieves every pizza entry priced at the minimum
	// (or maximum) pizza price, ties included.
	ExtremalPizzas(mostExpensive bool) ([]models.MenuView, error)
	// GetEntry retrieves a single entry with its associations loaded.
	GetEntry(id uint) (models.MenuEntry, error)
	// CreateEntry inserts a new dish together with its first menu entry.
	CreateEntry(input models.MenuInput, createdBy uint) (models.MenuView, error)
	// UpdateEntry updates an entry and its dish.
	UpdateEntry(id uint, input models.MenuInput) (models.MenuView, error)
	// DeleteEntry removes an entry, and its dish when no sibling entry remains.
	DeleteEntry(id uint) error
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

// withAssociations loads the joined row shape every projection needs.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("Dish").Preload("Category").Preload("Weight")
}

func projectAll(entries []models.MenuEntry) []models.MenuView {
	views := make([]models.MenuView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, models.NewMenuView(entry))
	}
	return views
}

func (s *menuService) ListMenu() ([]models.MenuView, error) {
	var entries []models.MenuEntry
	if err := withAssociations(s.db).Find(&entries).Error; err != nil {
		return nil, err
	}
	views := projectAll(entries)
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Category < views[j].Category
	})
	return views, nil
}

func (s *menuService) ListCategory(name string) ([]models.MenuView, error) {
	category, err := findCategory(s.db, name)
	if err != nil {
		return nil, err
	}
	var entries []models.MenuEntry
	if err := withAssociations(s.db).Where("category_id = ?", category.ID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return projectAll(entries), nil
}

func (s *menuService) ExtremalPizzas(mostExpensive bool) ([]models.MenuView, error) {
	pizzas, err := s.ListCategory(models.CategoryPizza)
	if err != nil {
		return nil, err
	}
	if len(pizzas) == 0 {
		return []models.MenuView{}, nil
	}

	extreme := pizzas[0].Price
	for _, view := range pizzas[1:] {
		if (mostExpensive && view.Price > extreme) || (!mostExpensive && view.Price < extreme) {
			extreme = view.Price
		}
	}

	matches := make([]models.MenuView, 0, 1)
	for _, view := range pizzas {
		if view.Price == extreme {
			matches = append(matches, view)
		}
	}
	return matches, nil
}

func (s *menuService) GetEntry(id uint) (models.MenuEntry, error) {
	var entry models.MenuEntry
	if err := withAssociations(s.db).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuEntry{}, ErrNotFound
		}
		return models.MenuEntry{}, err
	}
	return entry, nil
}

func (s *menuService) CreateEntry(input models.MenuInput, createdBy uint) (models.MenuView, error) {
	var entryID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Dish{}).Where("title = ?", input.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &NotUniqueError{Title: input.Title}
		}

		category, err := findCategory(tx, input.Category)
		if err != nil {
			return err
		}
		weight, err := findWeight(tx, input.Weight)
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(input.Price, 64)
		if err != nil {
			return err
		}

		dish := models.Dish{
			Title:       input.Title,
			Anonce:      input.Anonce,
			PhotoSmall:  input.PhotoSmall,
			PhotoFirst:  input.PhotoFirst,
			PhotoSecond: input.PhotoSecond,
		}
		if err := tx.Create(&dish).Error; err != nil {
			return err
		}

		entry := models.MenuEntry{
			DishID:        dish.ID,
			CategoryID:    category.ID,
			WeightID:      weight.ID,
			WeightDesc:    input.WeightDesc,
			Price:         price,
			Calories:      input.Calories,
			Carbohydrates: input.Carbohydrates,
			Fats:          input.Fats,
			Proteins:      input.Proteins,
			CreatedBy:     createdBy,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		entryID = entry.ID
		return nil
	})
	if err != nil {
		return models.MenuView{}, err
	}
	return s.projectEntry(entryID)
}

func (s *menuService) UpdateEntry(id uint, input models.MenuInput) (models.MenuView, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var entry models.MenuEntry
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Dish{}).Where("title = ? AND id <> ?", input.Title, entry.DishID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &NotUniqueError{Title: input.Title}
		}

		category, err := findCategory(tx, input.Category)
		if err != nil {
			return err
		}
		weight, err := findWeight(tx, input.Weight)
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(input.Price, 64)
		if err != nil {
			return err
		}

		dishFields := map[string]interface{}{
			"title":        input.Title,
			"anonce":       input.Anonce,
			"photo_small":  input.PhotoSmall,
			"photo_first":  input.PhotoFirst,
			"photo_second": input.PhotoSecond,
		}
		if err := tx.Model(&models.Dish{}).Where("id = ?", entry.DishID).Updates(dishFields).Error; err != nil {
			return err
		}

		entryFields := map[string]interface{}{
			"category_id":   category.ID,
			"weight_id":     weight.ID,
			"weight_desc":   input.WeightDesc,
			"price":         price,
			"calories":      input.Calories,
			"carbohydrates": input.Carbohydrates,
			"fats":          input.Fats,
			"proteins":      input.Proteins,
		}
		return tx.Model(&models.MenuEntry{}).Where("id = ?", id).Updates(entryFields).Error
	})
	if err != nil {
		return models.MenuView{}, err
	}
	return s.projectEntry(id)
}

func (s *menuService) DeleteEntry(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var entry models.MenuEntry
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&models.MenuEntry{}, id).Error; err != nil {
			return err
		}
		// The dish goes too when this was its last entry.
		var siblings int64
		if err := tx.Model(&models.MenuEntry{}).Where("dish_id = ?", entry.DishID).Count(&siblings).Error; err != nil {
			return err
		}
		if siblings == 0 {
			return tx.Delete(&models.Dish{}, entry.DishID).Error
		}
		return nil
	})
}

// projectEntry reloads a committed entry with its associations and
// projects it, so responses always reflect persisted state.
func (s *menuService) projectEntry(id uint) (models.MenuView, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return models.MenuView{}, err
	}
	return models.NewMenuView(entry), nil
}

func findCategory(db *gorm.DB, name string) (models.Category, error) {
	var category models.Category
	if err := db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, &InvalidReferenceError{Kind: "category", Name: name}
		}
		return models.Category{}, err
	}
	return category, nil
}

func findWeight(db *gorm.DB, label string) (models.Weight, error) {
	var weight models.Weight
	if err := db.Where("label = ?", label).First(&weight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Weight{}, &InvalidReferenceError{Kind: "weight", Name: label}
		}
		return models.Weight{}, err
	}
	return weight, nil
}
