package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"food_delivery/constants"
	"food_delivery/model"
	"food_delivery/utils"
)

// SaveCategory dùng cho cả tạo mới và cập nhật danh mục
func SaveCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SaveCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input.Name = utils.SanitizeInput(input.Name)
		input.Description = utils.SanitizeInput(input.Description)

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if input.Name == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("name is empty"), "name")
		}

		c.Locals("inputSaveCategory", input)
		return c.Next()
	}
}
