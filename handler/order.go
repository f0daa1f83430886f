package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/helper"
	"food_delivery/model"
	"food_delivery/utils"
)

func generateOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s", suffix)
}

// CreateOrder đặt hàng từ giỏ của client. Guest được phép đặt (user_id = NULL).
// Tổng tiền tính từ đơn giá client gửi lên, không so lại giá catalog hiện tại
// (giá đã chốt trong giỏ). Order và toàn bộ order_items ghi trong một
// transaction duy nhất: lỗi ở bất kỳ bước nào thì rollback toàn bộ.
func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing order input"))
	}

	userId, user := helper.GetOptionalUserId(c, h.DB)

	totalAmount := 0
	for _, item := range input.CartItems {
		totalAmount += item.Price * item.Quantity
	}

	deliveryAddress := input.AreaAddress + " - " + input.DetailAddress
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "COD"
	}

	order := model.Order{
		PublicCode:      generateOrderCode(),
		UserId:          userId,
		ReceiverName:    input.ReceiverName,
		PhoneNumber:     input.PhoneNumber,
		DeliveryAddress: deliveryAddress,
		TotalAmount:     totalAmount,
		Status:          constants.ORDER_STATUS_PENDING,
		PaymentMethod:   paymentMethod,
	}

	tx := h.DB.Begin()
	if err := tx.Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_FAILED, err)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_FAILED, err)
	}

	for _, item := range input.CartItems {
		orderItem := model.OrderItem{
			OrderId:     order.ID,
			DishId:      item.DishId,
			Quantity:    item.Quantity,
			PriceAtTime: item.Price, // Lưu giá tại thời điểm đặt hàng
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_FAILED, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_FAILED, err)
	}

	if user != nil && user.Email != "" {
		h.sendOrderConfirmation(user.Email, order, input.CartItems)
	}

	message := fmt.Sprintf("Đơn hàng của bạn đã được đặt thành công! Mã đơn hàng: #%d", order.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, message, fiber.Map{
		"order_id":     order.ID,
		"public_code":  order.PublicCode,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
	})
}

func (h *Handler) sendOrderConfirmation(email string, order model.Order, cartItems []model.CartItemInput) {
	dishIds := make([]uint, 0, len(cartItems))
	for _, item := range cartItems {
		dishIds = append(dishIds, item.DishId)
	}

	var dishes []model.Dish
	if err := h.DB.Where("id IN ?", dishIds).Find(&dishes).Error; err != nil {
		log.Printf("Lỗi tải món ăn cho email xác nhận đơn %s: %v", order.PublicCode, err)
		return
	}
	nameById := make(map[uint]string, len(dishes))
	for _, dish := range dishes {
		nameById[dish.ID] = dish.Name
	}

	data := utils.OrderConfirmationData{
		OrderCode:       order.PublicCode,
		ReceiverName:    order.ReceiverName,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod,
	}
	for _, item := range cartItems {
		data.Items = append(data.Items, utils.OrderConfirmationItem{
			Name:     nameById[item.DishId],
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	utils.SendOrderConfirmationEmail(email, data)
}

// GetOrders trả về đơn của người gọi; admin thấy tất cả đơn
func (h *Handler) GetOrders(c *fiber.Ctx) error {
	claim, isAdmin, err := helper.GetInfoUserFromToken(c, h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	query := h.DB.Preload("Items").Preload("Items.Dish").Order("created_at desc")
	if !isAdmin {
		query = query.Where("user_id = ?", claim.UserId)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOAD_ORDERS_SUCCESS, orders)
}

func (h *Handler) GetOrderDetail(c *fiber.Ctx) error {
	claim, isAdmin, err := helper.GetInfoUserFromToken(c, h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	orderCode := c.Params("publicCode")

	var order model.Order
	if err := h.DB.
		Preload("Items").
		Preload("Items.Dish").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	isOwner := order.UserId != nil && *order.UserId == claim.UserId
	if !isAdmin && !isOwner {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not order owner"))
	}

	// Một QR duy nhất cho cả đơn hàng, nội dung là mã công khai
	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn hàng %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	items := []fiber.Map{}
	for _, item := range order.Items {
		dishName := ""
		if item.Dish != nil {
			dishName = item.Dish.Name
		}
		items = append(items, fiber.Map{
			"dish_id":       item.DishId,
			"dish_name":     dishName,
			"quantity":      item.Quantity,
			"price_at_time": item.PriceAtTime,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Tải đơn hàng thành công.", fiber.Map{
		"orderCode":        order.PublicCode,
		"receiver_name":    order.ReceiverName,
		"phone_number":     order.PhoneNumber,
		"delivery_address": order.DeliveryAddress,
		"total_amount":     order.TotalAmount,
		"payment_method":   order.PaymentMethod,
		"status":           order.Status,
		"created_at":       order.CreatedAt.Format("15:04 - 02/01/2006"),
		"items":            items,
		"qrCode":           qrBase64,
	})
}

// UpdateOrderStatus đổi trạng thái đơn (admin). Không ràng buộc thứ tự chuyển
// trạng thái, chỉ yêu cầu giá trị thuộc tập cố định.
func (h *Handler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing order id"))
	}
	input, ok := c.Locals("inputOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing status input"))
	}

	var order model.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := h.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, constants.UPDATE_STATUS_SUCCESS, fiber.Map{
		"order_id": order.ID,
		"status":   input.Status,
	})
}
