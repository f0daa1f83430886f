package handler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"food_delivery/config"
	"food_delivery/constants"
	"food_delivery/helper"
	"food_delivery/model"
	"food_delivery/utils"
)

func (h *Handler) GetDishes(c *fiber.Ctx) error {
	filterInput := new(model.FilterDish)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := h.DB.Where("is_available = ?", true).Order("id asc")
	if filterInput.CategoryId != nil && *filterInput.CategoryId != 0 {
		query = query.Where("category_id = ?", *filterInput.CategoryId)
	}

	var dishes []model.Dish
	if err := query.Find(&dishes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for i := range dishes {
		dishes[i].ImageUrl = helper.NormalizeImageUrl(dishes[i].ImageUrl)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOAD_DISHES_SUCCESS, dishes)
}

func (h *Handler) GetDishById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing dish id"))
	}

	var dish model.Dish
	if err := h.DB.Preload("Category").First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISH_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	dish.ImageUrl = helper.NormalizeImageUrl(dish.ImageUrl)
	return utils.SuccessResponse(c, fiber.StatusOK, "Tải sản phẩm thành công.", dish)
}

func (h *Handler) GetDishBySlug(c *fiber.Ctx) error {
	dishSlug := c.Params("slug")

	var dish model.Dish
	if err := h.DB.Preload("Category").Where("slug = ?", dishSlug).First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISH_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	dish.ImageUrl = helper.NormalizeImageUrl(dish.ImageUrl)
	return utils.SuccessResponse(c, fiber.StatusOK, "Tải sản phẩm thành công.", dish)
}

// SaveDish: id có giá trị ⇒ cập nhật, ngược lại tạo mới. Slug sinh lại theo tên.
func (h *Handler) SaveDish(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSaveDish").(model.SaveDishInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing dish input"))
	}

	if input.Id != nil && *input.Id != 0 {
		var dish model.Dish
		if err := h.DB.First(&dish, *input.Id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISH_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != dish.Name {
			dish.Slug = helper.GenerateUniqueDishSlug(h.DB, input.Name, input.Id)
		}
		dish.Name = input.Name
		dish.Description = input.Description
		dish.Price = input.Price
		dish.ImageUrl = input.ImageUrl
		dish.CategoryId = input.CategoryId
		if input.IsAvailable != nil {
			dish.IsAvailable = input.IsAvailable
		}
		if err := h.DB.Save(&dish).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, constants.SAVE_DISH_SUCCESS, dish)
	}

	var dish model.Dish
	if err := copier.Copy(&dish, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	dish.ID = 0
	dish.Slug = helper.GenerateUniqueDishSlug(h.DB, input.Name, nil)
	if err := h.DB.Create(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, constants.SAVE_DISH_SUCCESS, dish)
}

func (h *Handler) UpdateDish(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing dish id"))
	}
	input, ok := c.Locals("inputSaveDish").(model.SaveDishInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing dish input"))
	}

	input.Id = utils.Ptr(uint(id))
	c.Locals("inputSaveDish", input)
	return h.SaveDish(c)
}

func (h *Handler) DeleteDish(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing dish id"))
	}

	var dish model.Dish
	if err := h.DB.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISH_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := h.DB.Delete(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.DELETE_DISH_SUCCESS, nil)
}

// UploadDishImage upload ảnh món ăn lên Cloudinary và lưu secure URL
func (h *Handler) UploadDishImage(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing dish id"))
	}

	var dish model.Dish
	if err := h.DB.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISH_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "image")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains([]string{".png", ".jpg", ".jpeg"}, ext) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.UNSUPPORTED_IMAGE_FORMAT, nil, "image")
	}

	fileReader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer fileReader.Close()

	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	uploadResult, err := cld.Upload.Upload(context.Background(), fileReader, uploader.UploadParams{
		Folder:       "dishes",
		PublicID:     fmt.Sprintf("dish_%d_%d", dish.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_FAILED, err)
	}

	dish.ImageUrl = uploadResult.SecureURL
	if err := h.DB.Save(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, constants.SAVE_DISH_SUCCESS, fiber.Map{
		"image_url": dish.ImageUrl,
	})
}
