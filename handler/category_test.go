package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food_delivery/constants"
	"food_delivery/model"
	"food_delivery/utils"
)

func TestGetCategoriesOnlyActive(t *testing.T) {
	app, db := setupApp(t)
	createCategory(t, db, "Món chính")

	inactive := model.Category{Name: "Danh mục ẩn", IsActive: utils.Ptr(false)}
	require.NoError(t, db.Create(&inactive).Error)

	resp, out := doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/categories", nil, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []model.Category
	require.NoError(t, jsonUnmarshal(out.Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Món chính", categories[0].Name)
}

func TestSaveCategoryCreateAndUpdate(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@neu.edu.vn", constants.ROLE_ADMIN)

	resp, out := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/categories", fiber.Map{
		"name":        "  Đồ uống  ",
		"description": "Trà sữa, cà phê",
	}, adminToken))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, constants.SAVE_CATEGORY_SUCCESS, out.Message)

	var created model.Category
	require.NoError(t, jsonUnmarshal(out.Data, &created))
	assert.Equal(t, "Đồ uống", created.Name) // đã trim

	resp, out = doRequest(t, app, jsonRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/categories/%d", created.ID), fiber.Map{
			"name":     "Đồ uống lạnh",
			"isActive": false,
		}, adminToken))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Category
	require.NoError(t, db.First(&updated, created.ID).Error)
	assert.Equal(t, "Đồ uống lạnh", updated.Name)
	require.NotNil(t, updated.IsActive)
	assert.False(t, *updated.IsActive)

	resp, _ = doRequest(t, app, jsonRequest(http.MethodPut, "/api/v1/categories/99999",
		fiber.Map{"name": "Không có"}, adminToken))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveCategoryRequiresName(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@neu.edu.vn", constants.ROLE_ADMIN)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/categories",
		fiber.Map{"description": "thiếu tên"}, adminToken))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Xóa danh mục không được kéo theo món ăn, chỉ gỡ liên kết
func TestDeleteCategoryDetachesDishes(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@neu.edu.vn", constants.ROLE_ADMIN)
	doUong := createCategory(t, db, "Đồ uống")
	dish := createDish(t, db, "Trà sữa", "tra-sua", 30000, &doUong.ID)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodDelete,
		fmt.Sprintf("/api/v1/categories/%d", doUong.ID), nil, adminToken))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categoryCount int64
	db.Model(&model.Category{}).Count(&categoryCount)
	assert.Zero(t, categoryCount)

	var survivor model.Dish
	require.NoError(t, db.First(&survivor, dish.ID).Error)
	assert.Nil(t, survivor.CategoryId)
}
