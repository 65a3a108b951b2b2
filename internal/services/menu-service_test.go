package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// A named shared-cache memory database survives gorm's connection
	// pool handing out more than one connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Category{}, &models.Weight{}, &models.Dish{}, &models.MenuEntry{}, &models.User{})
	require.NoError(t, err)

	for _, name := range models.CategoryNames {
		require.NoError(t, db.Create(&models.Category{Name: name}).Error)
	}
	for _, label := range models.WeightLabels {
		require.NoError(t, db.Create(&models.Weight{Label: label}).Error)
	}
	return db
}

func pizzaInput(title, price string) models.MenuInput {
	return models.MenuInput{
		Title:      title,
		Category:   models.CategoryPizza,
		Weight:     models.WeightBig,
		WeightDesc: "780 g",
		Price:      price,
		Anonce:     "Tomato sauce, mozzarella",
		Calories:   "250",
	}
}

func TestCreateEntryReadAfterWrite(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	created, err := service.CreateEntry(pizzaInput("Margherita", "19.9"), 7)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", created.Title)
	assert.Equal(t, models.CategoryPizza, created.Category)
	assert.Equal(t, models.WeightBig, created.Size)
	assert.Equal(t, 19.9, created.Price)

	views, err := service.ListMenu()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, created, views[0])

	entry, err := service.GetEntry(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), entry.CreatedBy)
}

func TestCreateEntryDuplicateTitle(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	first, err := service.CreateEntry(pizzaInput("Pepperoni", "21"), 1)
	require.NoError(t, err)

	_, err = service.CreateEntry(pizzaInput("Pepperoni", "25"), 1)
	var notUnique *NotUniqueError
	require.ErrorAs(t, err, &notUnique)
	assert.Equal(t, "Pepperoni", notUnique.Title)

	// The first entry is unaffected.
	views, err := service.ListMenu()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, first.ID, views[0].ID)
	assert.Equal(t, 21.0, views[0].Price)
}

func TestCreateEntryInvalidReferences(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	in := pizzaInput("Hawaii", "20")
	in.Category = "burger"
	_, err := service.CreateEntry(in, 1)
	var invalidRef *InvalidReferenceError
	require.ErrorAs(t, err, &invalidRef)
	assert.Equal(t, "Invalid category name: burger.", invalidRef.Error())

	in = pizzaInput("Hawaii", "20")
	in.Weight = "giant"
	_, err = service.CreateEntry(in, 1)
	require.ErrorAs(t, err, &invalidRef)
	assert.Equal(t, "Invalid weight name: giant.", invalidRef.Error())

	// Nothing was written on either failure.
	views, err := service.ListMenu()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUpdateEntry(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	created, err := service.CreateEntry(pizzaInput("Four Seasons", "24"), 1)
	require.NoError(t, err)

	in := pizzaInput("Four Seasons Deluxe", "27.5")
	in.Weight = models.WeightMedium
	updated, err := service.UpdateEntry(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Four Seasons Deluxe", updated.Title)
	assert.Equal(t, models.WeightMedium, updated.Size)
	assert.Equal(t, 27.5, updated.Price)

	// Keeping your own title is not a uniqueness conflict.
	_, err = service.UpdateEntry(created.ID, in)
	require.NoError(t, err)
}

func TestUpdateEntryErrors(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	_, err := service.UpdateEntry(42, pizzaInput("Ghost", "10"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.CreateEntry(pizzaInput("Taken", "10"), 1)
	require.NoError(t, err)
	other, err := service.CreateEntry(pizzaInput("Renamable", "11"), 1)
	require.NoError(t, err)

	var notUnique *NotUniqueError
	_, err = service.UpdateEntry(other.ID, pizzaInput("Taken", "11"))
	assert.ErrorAs(t, err, &notUnique)
}

func TestDeleteEntryCascadesOrphanedDish(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)

	created, err := service.CreateEntry(pizzaInput("Lonely", "15"), 1)
	require.NoError(t, err)

	require.NoError(t, service.DeleteEntry(created.ID))

	var dishes int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&dishes).Error)
	assert.Zero(t, dishes)

	assert.ErrorIs(t, service.DeleteEntry(created.ID), ErrNotFound)
}

func TestDeleteEntryKeepsDishWithSiblings(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)

	created, err := service.CreateEntry(pizzaInput("Shared", "15"), 1)
	require.NoError(t, err)

	// Second entry for the same dish in a different size.
	entry, err := service.GetEntry(created.ID)
	require.NoError(t, err)
	sibling := models.MenuEntry{
		DishID:     entry.DishID,
		CategoryID: entry.CategoryID,
		WeightID:   entry.WeightID,
		Price:      12,
	}
	require.NoError(t, db.Create(&sibling).Error)

	require.NoError(t, service.DeleteEntry(created.ID))

	var dishes int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&dishes).Error)
	assert.Equal(t, int64(1), dishes)

	remaining, err := service.GetEntry(sibling.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.DishID, remaining.DishID)
}

func TestListMenuSortedByCategory(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	snack := pizzaInput("Nuggets", "8")
	snack.Category = models.CategorySnack
	_, err := service.CreateEntry(snack, 1)
	require.NoError(t, err)

	drink := pizzaInput("Cola", "3")
	drink.Category = models.CategoryDrink
	drink.Weight = models.WeightStandard
	_, err = service.CreateEntry(drink, 1)
	require.NoError(t, err)

	_, err = service.CreateEntry(pizzaInput("Margherita", "19"), 1)
	require.NoError(t, err)

	views, err := service.ListMenu()
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, []string{models.CategoryDrink, models.CategoryPizza, models.CategorySnack},
		[]string{views[0].Category, views[1].Category, views[2].Category})
}

func TestListCategoryUnknownName(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	_, err := service.ListCategory("sushi")
	var invalidRef *InvalidReferenceError
	require.ErrorAs(t, err, &invalidRef)
	assert.Equal(t, "Invalid category name: sushi.", invalidRef.Error())
}

func TestProjectionOmitsNutritionForDrinksAndSauces(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	for _, category := range []string{models.CategoryDrink, models.CategorySauce} {
		in := pizzaInput("Item "+category, "4")
		in.Category = category
		in.Weight = models.WeightStandard
		in.Calories = ""
		view, err := service.CreateEntry(in, 1)
		require.NoError(t, err)
		assert.Nil(t, view.Calories, category)
		assert.Nil(t, view.Carbohydrates, category)
		assert.Nil(t, view.Fats, category)
		assert.Nil(t, view.Proteins, category)
	}

	in := pizzaInput("Tiramisu", "6")
	in.Category = models.CategoryDessert
	in.Weight = models.WeightStandard
	in.Calories = ""
	view, err := service.CreateEntry(in, 1)
	require.NoError(t, err)
	// Keys are present even when the value is empty.
	require.NotNil(t, view.Calories)
	assert.Equal(t, "", *view.Calories)
	require.NotNil(t, view.Proteins)
}

func TestExtremalPizzasReturnAllTies(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	prices := map[string]string{
		"Budget": "19", "Mid": "25", "Top One": "30", "Top Two": "30",
	}
	for title, price := range prices {
		_, err := service.CreateEntry(pizzaInput(title, price), 1)
		require.NoError(t, err)
	}
	// A pricey snack must not influence the pizza extremes.
	snack := pizzaInput("Golden Nuggets", "99")
	snack.Category = models.CategorySnack
	_, err := service.CreateEntry(snack, 1)
	require.NoError(t, err)

	cheap, err := service.ExtremalPizzas(false)
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Budget", cheap[0].Title)

	expensive, err := service.ExtremalPizzas(true)
	require.NoError(t, err)
	require.Len(t, expensive, 2)
	titles := []string{expensive[0].Title, expensive[1].Title}
	assert.ElementsMatch(t, []string{"Top One", "Top Two"}, titles)
}

func TestExtremalPizzasEmptyCatalog(t *testing.T) {
	service := NewMenuService(setupTestDB(t))

	views, err := service.ExtremalPizzas(true)
	require.NoError(t, err)
	assert.Empty(t, views)
}
