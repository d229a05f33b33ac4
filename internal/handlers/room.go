package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/utils"
	"gorm.io/gorm"
)

// RoomHandler handles room routes
type RoomHandler struct {
	DB *gorm.DB
}

// CreateRoom handles POST /api/rooms
// @Summary Create a room
// @Description Create a room on a project; walkthrough sheets auto-populate from the catalog
// @Tags Rooms
// @Accept json
// @Produce json
// @Param body body services.RoomInput true "Room fields"
// @Success 201 {object} models.Room
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var input services.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	room, err := services.CreateRoom(h.DB, input)
	if err != nil {
		return serviceError(c, err, "createRoom")
	}

	return utils.SuccessResponse(c, room, fiber.StatusCreated)
}

// GetRoom handles GET /api/rooms/:id
// @Summary Get a room tree
// @Description Get one room with its category/subcategory/item tree
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	room, err := services.GetRoom(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getRoom")
	}
	return utils.SuccessResponse(c, room, fiber.StatusOK)
}

// DeleteRoom handles DELETE /api/rooms/:id
// @Summary Delete a room
// @Description Delete a room and everything beneath it
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	affected, err := services.DeleteRoom(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "deleteRoom")
	}
	return utils.MutationSuccessResponse(c, affected)
}
