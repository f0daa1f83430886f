package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/model"
	"food_delivery/utils"
)

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := h.DB.
		Where("is_active = ?", true).
		Order("id asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOAD_CATEGORIES_SUCCESS, categories)
}

// SaveCategory: id có giá trị ⇒ cập nhật, ngược lại tạo mới
func (h *Handler) SaveCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSaveCategory").(model.SaveCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing category input"))
	}

	if input.Id != nil && *input.Id != 0 {
		var category model.Category
		if err := h.DB.First(&category, *input.Id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CATEGORY_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		category.Name = input.Name
		category.Description = input.Description
		if input.IsActive != nil {
			category.IsActive = input.IsActive
		}
		if err := h.DB.Save(&category).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, constants.SAVE_CATEGORY_SUCCESS, category)
	}

	var category model.Category
	if err := copier.Copy(&category, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := h.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, constants.SAVE_CATEGORY_SUCCESS, category)
}

func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing category id"))
	}
	input, ok := c.Locals("inputSaveCategory").(model.SaveCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing category input"))
	}

	input.Id = utils.Ptr(uint(id))
	c.Locals("inputSaveCategory", input)
	return h.SaveCategory(c)
}

// DeleteCategory xóa cứng; món ăn thuộc danh mục được gỡ về category_id = NULL,
// không xóa lan sang món ăn
func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing category id"))
	}

	var category model.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CATEGORY_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := h.DB.Begin()
	if err := tx.Model(&model.Dish{}).
		Where("category_id = ?", category.ID).
		Update("category_id", nil).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&category).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, constants.DELETE_CATEGORY_SUCCESS, nil)
}
