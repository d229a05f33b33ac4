package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/catalog"
	"github.com/trovestudio/ffetrack/internal/utils"
	"github.com/trovestudio/ffetrack/internal/vocab"
)

// VocabHandler serves the fixed status/carrier vocabulary and the
// catalog room list. All of it is static process data, no DB involved.
type VocabHandler struct{}

// Statuses handles GET /api/statuses-enhanced
// @Summary List item statuses
// @Description List the procurement status vocabulary with display colors, in lifecycle order
// @Tags Vocabulary
// @Accept json
// @Produce json
// @Success 200 {array} vocab.StatusOption
// @Router /statuses-enhanced [get]
func (h *VocabHandler) Statuses(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, vocab.Statuses(), fiber.StatusOK)
}

// Carriers handles GET /api/carrier-options
// @Summary List carrier options
// @Description List the shipping carrier vocabulary with brand colors
// @Tags Vocabulary
// @Accept json
// @Produce json
// @Success 200 {array} vocab.CarrierOption
// @Router /carrier-options [get]
func (h *VocabHandler) Carriers(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, vocab.Carriers(), fiber.StatusOK)
}

// AvailableRooms handles GET /api/rooms/available
// @Summary List catalog room types
// @Description List the room types the catalog can auto-populate
// @Tags Vocabulary
// @Accept json
// @Produce json
// @Success 200 {array} string
// @Router /rooms/available [get]
func (h *VocabHandler) AvailableRooms(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, catalog.AvailableRooms(), fiber.StatusOK)
}
