package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Katrinaqr/menu-RestApi/internal/middleware"
	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"github.com/Katrinaqr/menu-RestApi/internal/services"
	"github.com/Katrinaqr/menu-RestApi/internal/validation"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests against the menu catalog.
type MenuController interface {
	// GetMenu retrieves the whole menu sorted by category.
	GetMenu(c *gin.Context)
	// GetCategory retrieves the entries of a single category.
	GetCategory(c *gin.Context)
	// GetCheapPizzas retrieves the pizzas tied at the minimum price.
	GetCheapPizzas(c *gin.Context)
	// GetExpensivePizzas retrieves the pizzas tied at the maximum price.
	GetExpensivePizzas(c *gin.Context)
	// CreateEntry creates a new dish together with its menu entry.
	CreateEntry(c *gin.Context)
	// UpdateEntry updates an existing menu entry and its dish.
	UpdateEntry(c *gin.Context)
	// DeleteEntry deletes a menu entry, cascading to an orphaned dish.
	DeleteEntry(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController.
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

// GetMenu godoc
// @Summary Get the whole menu
// @Description All menu entries, projected and sorted by category name
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuView
// @Failure 500 {object} models.APIError
// @Router /menu [get]
func (mc *menuController) GetMenu(ctx *gin.Context) {
	views, err := mc.service.ListMenu()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("Failed to retrieve menu"))
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// GetCategory godoc
// @Summary Get one category of the menu
// @Description Entries of one category in storage order
// @Tags menu
// @Produce json
// @Param category path string true "Category name (pizza, snack, dessert, drink, sauce)"
// @Success 200 {array} models.MenuView
// @Failure 400 {object} models.APIError
// @Router /menu/{category} [get]
func (mc *menuController) GetCategory(ctx *gin.Context) {
	views, err := mc.service.ListCategory(ctx.Param("category"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// GetCheapPizzas godoc
// @Summary Get the cheapest pizzas
// @Description Every pizza entry priced at the minimum pizza price
// @Tags menu
// @Produce json
// @Param category path string true "Must be pizza"
// @Success 200 {array} models.MenuView
// @Failure 400 {object} models.APIError
// @Router /menu/{category}/cheap [get]
func (mc *menuController) GetCheapPizzas(ctx *gin.Context) {
	mc.extremalPizzas(ctx, false)
}

// GetExpensivePizzas godoc
// @Summary Get the most expensive pizzas
// @Description Every pizza entry priced at the maximum pizza price
// @Tags menu
// @Produce json
// @Param category path string true "Must be pizza"
// @Success 200 {array} models.MenuView
// @Failure 400 {object} models.APIError
// @Router /menu/{category}/expensive [get]
func (mc *menuController) GetExpensivePizzas(ctx *gin.Context) {
	mc.extremalPizzas(ctx, true)
}

func (mc *menuController) extremalPizzas(ctx *gin.Context, mostExpensive bool) {
	if category := ctx.Param("category"); category != models.CategoryPizza {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("Price extremes are only available for the pizza category."))
		return
	}
	views, err := mc.service.ExtremalPizzas(mostExpensive)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// CreateEntry godoc
// @Summary Create a dish with its menu entry
// @Description Create a new dish together with one priced, sized, categorized entry
// @Tags menu
// @Accept json
// @Produce json
// @Param entry body models.MenuInput true "Menu submission"
// @Success 201 {object} models.MenuView
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /menu [post]
func (mc *menuController) CreateEntry(ctx *gin.Context) {
	var input models.MenuInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("Invalid request body"))
		return
	}

	if fieldErrs := validation.ValidateMenuInput(input); len(fieldErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError("User not authenticated"))
		return
	}

	view, err := mc.service.CreateEntry(input, userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}

// UpdateEntry godoc
// @Summary Update a menu entry
// @Description Update an entry and its dish; admins may only touch entries they created
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu entry ID"
// @Param entry body models.MenuInput true "Menu submission"
// @Success 200 {object} models.MenuView
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /menu/{id} [put]
func (mc *menuController) UpdateEntry(ctx *gin.Context) {
	entry, ok := mc.authorizedEntry(ctx)
	if !ok {
		return
	}

	var input models.MenuInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("Invalid request body"))
		return
	}

	if fieldErrs := validation.ValidateMenuInput(input); len(fieldErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	view, err := mc.service.UpdateEntry(entry.ID, input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// DeleteEntry godoc
// @Summary Delete a menu entry
// @Description Delete an entry; the dish goes too when no sibling entry remains
// @Tags menu
// @Produce json
// @Param id path int true "Menu entry ID"
// @Success 200 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /menu/{id} [delete]
func (mc *menuController) DeleteEntry(ctx *gin.Context) {
	entry, ok := mc.authorizedEntry(ctx)
	if !ok {
		return
	}

	if err := mc.service.DeleteEntry(entry.ID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewAPIError("Successfully deleted the item with id: "+strconv.FormatUint(uint64(entry.ID), 10)))
}

// authorizedEntry resolves the :id parameter and applies the ownership
// predicate shared by update and delete. On failure the response has
// already been written.
func (mc *menuController) authorizedEntry(ctx *gin.Context) (models.MenuEntry, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("Invalid menu entry ID format"))
		return models.MenuEntry{}, false
	}

	entry, err := mc.service.GetEntry(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError("Unable to find item with id: "+ctx.Param("id")))
		} else {
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError("Failed to load menu entry"))
		}
		return models.MenuEntry{}, false
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError("User not authenticated"))
		return models.MenuEntry{}, false
	}
	role, _ := ctx.Get("userRole")
	userRole, _ := role.(string)

	if !middleware.CanModify(userRole, userID, entry.CreatedBy) {
		ctx.JSON(http.StatusForbidden, models.NewAPIError("You can only modify your own menu entries"))
		return models.MenuEntry{}, false
	}
	return entry, true
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// respondServiceError maps catalog store errors onto the HTTP contract.
func respondServiceError(ctx *gin.Context, err error) {
	var notUnique *services.NotUniqueError
	var invalidRef *services.InvalidReferenceError
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(err.Error()))
	case errors.As(err, &notUnique):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(notUnique.Error()))
	case errors.As(err, &invalidRef):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(invalidRef.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
	}
}
