package validate

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"food_delivery/constants"
	"food_delivery/model"
	"food_delivery/utils"
)

// CreateOrder kiểm tra giỏ hàng và thông tin giao hàng trước khi mở transaction.
// Các lỗi validation phải bị chặn ở đây, không được chạm vào database.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_ORDER_INPUT, err)
		}

		input.ReceiverName = utils.SanitizeInput(input.ReceiverName)
		input.PhoneNumber = utils.SanitizeInput(input.PhoneNumber)
		input.AreaAddress = utils.SanitizeInput(input.AreaAddress)
		input.DetailAddress = utils.SanitizeInput(input.DetailAddress)
		input.PaymentMethod = utils.SanitizeInput(input.PaymentMethod)

		if len(input.CartItems) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_CART, errors.New("cart_items is empty"))
		}
		// Sau khi sanitize, field bắt buộc nào rỗng thì báo đúng field đó
		requiredFields := map[string]string{
			"receiver_name":  input.ReceiverName,
			"phone_number":   input.PhoneNumber,
			"area_address":   input.AreaAddress,
			"detail_address": input.DetailAddress,
		}
		for key, value := range requiredFields {
			if value == "" {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MISSING_ORDER_INPUT,
					fmt.Errorf("%s is empty", key), key)
			}
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_ORDER_INPUT, err)
		}

		c.Locals("inputCreateOrder", input)
		return c.Next()
	}
}

// OrderStatus kiểm tra trạng thái mới thuộc tập cố định
func OrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input.Status = utils.SanitizeInput(input.Status)
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !utils.IsValidValueOfConstant(input.Status, constants.ORDER_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, errors.New("status not allowed"))
		}

		c.Locals("inputOrderStatus", input)
		return c.Next()
	}
}
