package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/utils"
	"gorm.io/gorm"
)

// TransferHandler handles the item transfer route
type TransferHandler struct {
	DB *gorm.DB
}

// Transfer handles POST /api/transfer
// @Summary Transfer items between sheets
// @Description Copy selected items from a source room into a destination sheet, creating the room and structure on demand
// @Tags Transfer
// @Accept json
// @Produce json
// @Param body body services.TransferInput true "Transfer selection"
// @Success 200 {object} services.TransferResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transfer [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var input services.TransferInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	result, err := services.Transfer(h.DB, input)
	if err != nil {
		return serviceError(c, err, "transfer")
	}
	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
