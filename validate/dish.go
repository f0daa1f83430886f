package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/model"
	"food_delivery/utils"
)

// SaveDish kiểm tra input món ăn; danh mục tham chiếu phải tồn tại
func SaveDish(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SaveDishInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input.Name = utils.SanitizeInput(input.Name)
		input.Description = utils.SanitizeInput(input.Description)
		input.ImageUrl = utils.SanitizeInput(input.ImageUrl)

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if input.Name == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("name is empty"), "name")
		}
		if input.Price < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("price is negative"), "price")
		}

		if input.CategoryId != nil && *input.CategoryId != 0 {
			var category model.Category
			if err := db.First(&category, *input.CategoryId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CATEGORY_NOT_FOUND, errors.New("category_id not found"), "category_id")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		c.Locals("inputSaveDish", input)
		return c.Next()
	}
}
