package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/utils"
	"gorm.io/gorm"
)

// ItemHandler handles item routes
type ItemHandler struct {
	DB      *gorm.DB
	Scraper *scrape.Client
}

// CreateItem handles POST /api/items
// @Summary Create an item
// @Description Add an item to a subcategory; blank fields autofill from the product link when a scraper is configured
// @Tags Items
// @Accept json
// @Produce json
// @Param body body services.ItemInput true "Item fields"
// @Success 201 {object} models.Item
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var input services.ItemInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	item, err := services.CreateItem(c.UserContext(), h.DB, h.Scraper, input)
	if err != nil {
		return serviceError(c, err, "createItem")
	}
	return utils.SuccessResponse(c, item, fiber.StatusCreated)
}

// GetItem handles GET /api/items/:id
// @Summary Get an item
// @Description Get one item by id
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	item, err := services.GetItem(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getItem")
	}
	return utils.SuccessResponse(c, item, fiber.StatusOK)
}

// UpdateItem handles PUT /api/items/:id
// @Summary Update an item
// @Description Apply a partial update to an item; omitted fields are untouched
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param body body services.ItemUpdate true "Fields to update"
// @Success 200 {object} models.Item
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var update services.ItemUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	item, err := services.UpdateItem(h.DB, c.Params("id"), update)
	if err != nil {
		return serviceError(c, err, "updateItem")
	}
	return utils.SuccessResponse(c, item, fiber.StatusOK)
}

// DeleteItem handles DELETE /api/items/:id
// @Summary Delete an item
// @Description Delete one item by id
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	affected, err := services.DeleteItem(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "deleteItem")
	}
	return utils.MutationSuccessResponse(c, affected)
}
