package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"food_delivery/constants"
	"food_delivery/helper"
	"food_delivery/model"
	"food_delivery/utils"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REGISTER_INPUT, err)
		}

		input.Email = utils.SanitizeInput(input.Email)
		input.FullName = utils.SanitizeInput(input.FullName)

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REGISTER_INPUT, err)
		}
		if !helper.ValidEmail(input.Email) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, errors.New("email invalid"))
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		input.Email = utils.SanitizeInput(input.Email)
		// Mật khẩu không sanitize, chỉ so với hash

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}
