package handler

import (
	"github.com/gofiber/fiber/v2"

	"food_delivery/constants"
	"food_delivery/helper"
	"food_delivery/utils"
)

// GetStatistics trả về số liệu tổng quan cho dashboard admin
func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	stats, err := helper.ComputeStatistics(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOAD_STATISTICS_SUCCESS, stats)
}
