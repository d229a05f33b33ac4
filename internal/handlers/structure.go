package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/catalog"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/utils"
	"gorm.io/gorm"
)

// StructureHandler handles category and subcategory routes
type StructureHandler struct {
	DB *gorm.DB
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Description Add an empty category to a room; idempotent on (room, name)
// @Tags Structure
// @Accept json
// @Produce json
// @Param body body services.CategoryInput true "Category fields"
// @Success 201 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [post]
func (h *StructureHandler) CreateCategory(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	category, err := services.CreateCategory(h.DB, input)
	if err != nil {
		return serviceError(c, err, "createCategory")
	}
	return utils.SuccessResponse(c, category, fiber.StatusCreated)
}

// CreateComprehensiveCategory handles POST /api/categories/comprehensive
// @Summary Create a catalog-seeded category
// @Description Add a category to a room seeded with its catalog subcategories and items
// @Tags Structure
// @Accept json
// @Produce json
// @Param body body services.CategoryInput true "Category fields"
// @Success 201 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/comprehensive [post]
func (h *StructureHandler) CreateComprehensiveCategory(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	category, err := services.CreateComprehensiveCategory(h.DB, input)
	if err != nil {
		return serviceError(c, err, "createComprehensiveCategory")
	}
	return utils.SuccessResponse(c, category, fiber.StatusCreated)
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Description Delete a category with its subcategories and items
// @Tags Structure
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/{id} [delete]
func (h *StructureHandler) DeleteCategory(c *fiber.Ctx) error {
	affected, err := services.DeleteCategory(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "deleteCategory")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// CreateSubcategory handles POST /api/subcategories
// @Summary Create a subcategory
// @Description Add an empty subcategory to a category; idempotent on (category, name)
// @Tags Structure
// @Accept json
// @Produce json
// @Param body body services.SubcategoryInput true "Subcategory fields"
// @Success 201 {object} models.Subcategory
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subcategories [post]
func (h *StructureHandler) CreateSubcategory(c *fiber.Ctx) error {
	var input services.SubcategoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	subcategory, err := services.CreateSubcategory(h.DB, input)
	if err != nil {
		return serviceError(c, err, "createSubcategory")
	}
	return utils.SuccessResponse(c, subcategory, fiber.StatusCreated)
}

// DeleteSubcategory handles DELETE /api/subcategories/:id
// @Summary Delete a subcategory
// @Description Delete a subcategory with its items
// @Tags Structure
// @Accept json
// @Produce json
// @Param id path string true "Subcategory ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subcategories/{id} [delete]
func (h *StructureHandler) DeleteSubcategory(c *fiber.Ctx) error {
	affected, err := services.DeleteSubcategory(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "deleteSubcategory")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// AvailableCategories handles GET /api/categories/available
// @Summary List catalog category names
// @Description List the category names the catalog can seed comprehensively
// @Tags Structure
// @Accept json
// @Produce json
// @Success 200 {array} string
// @Router /categories/available [get]
func (h *StructureHandler) AvailableCategories(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, catalog.AvailableCategories(), fiber.StatusOK)
}
