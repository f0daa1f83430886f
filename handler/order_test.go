package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food_delivery/constants"
	"food_delivery/model"
)

func TestCreateOrderGuest(t *testing.T) {
	app, db := setupApp(t)
	pho := createDish(t, db, "Phở bò", "pho-bo", 45000, nil)
	traSua := createDish(t, db, "Trà sữa", "tra-sua", 30000, nil)

	body := validOrderBody([]fiber.Map{
		{"dish_id": pho.ID, "price": 45000, "quantity": 2},
		{"dish_id": traSua.ID, "price": 30000, "quantity": 1},
	})

	resp, out := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/orders", body, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, out.Success)
	assert.Contains(t, out.Message, "Mã đơn hàng: #")

	var order model.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Nil(t, order.UserId)
	assert.Equal(t, 45000*2+30000, order.TotalAmount)
	assert.Equal(t, constants.ORDER_STATUS_PENDING, order.Status)
	assert.Equal(t, "Ký túc xá NEU - Phòng 101 nhà 11", order.DeliveryAddress)
	assert.True(t, strings.HasPrefix(order.PublicCode, "ORD-"))

	require.Len(t, order.Items, 2)
	assert.Equal(t, 45000, order.Items[0].PriceAtTime)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrderLoggedIn(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "sv@st.neu.edu.vn", constants.ROLE_CUSTOMER)
	dish := createDish(t, db, "Nem chua rán", "nem-chua-ran", 25000, nil)

	body := validOrderBody([]fiber.Map{
		{"dish_id": dish.ID, "price": 25000, "quantity": 3},
	})

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/orders", body, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order model.Order
	require.NoError(t, db.First(&order).Error)
	require.NotNil(t, order.UserId)
	assert.Equal(t, user.ID, *order.UserId)
	assert.Equal(t, 75000, order.TotalAmount)
}

// Token đã logout không được gắn danh tính vào đơn; đơn đi tiếp như guest
func TestCreateOrderRevokedTokenIsGuest(t *testing.T) {
	app, db := setupAppWithRedis(t)
	_, token := createUser(t, db, "sv@st.neu.edu.vn", constants.ROLE_CUSTOMER)
	dish := createDish(t, db, "Phở bò", "pho-bo", 45000, nil)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/auth/logout", nil, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := validOrderBody([]fiber.Map{
		{"dish_id": dish.ID, "price": 45000, "quantity": 1},
	})
	resp, _ = doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/orders", body, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order model.Order
	require.NoError(t, db.First(&order).Error)
	assert.Nil(t, order.UserId)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	app, db := setupApp(t)

	body := validOrderBody([]fiber.Map{})
	resp, out := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/orders", body, ""))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.EMPTY_CART, out.Message)

	var count int64
	db.Model(&model.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderMissingField(t *testing.T) {
	app, db := setupApp(t)
	dish := createDish(t, db, "Phở bò", "pho-bo", 45000, nil)

	body := validOrderBody([]fiber.Map{
		{"dish_id": dish.ID, "price": 45000, "quantity": 1},
	})
	body["receiver_name"] = "   "

	resp, out := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/orders", body, ""))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.MISSING_ORDER_INPUT, out.Message)
	assert.Equal(t, "receiver_name", out.KeyError)

	var count int64
	db.Model(&model.Order{}).Count(&count)
	assert.Zero(t, count)
}

// Item lỗi giữa chừng thì cả đơn phải bị hủy, không để lại order mồ côi
func TestCreateOrderRollbackOnInvalidDish(t *testing.T) {
	app, db := setupApp(t)
	dish := createDish(t, db, "Phở bò", "pho-bo", 45000, nil)

	body := validOrderBody([]fiber.Map{
		{"dish_id": dish.ID, "price": 45000, "quantity": 1},
		{"dish_id": 99999, "price": 10000, "quantity": 1},
	})

	resp, out := doRequest(t, app, jsonRequest(http.MethodPost, "/api/v1/orders", body, ""))
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, constants.ORDER_FAILED, out.Message)

	var orderCount, itemCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	db.Model(&model.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestGetOrdersOwnership(t *testing.T) {
	app, db := setupApp(t)
	userA, tokenA := createUser(t, db, "a@st.neu.edu.vn", constants.ROLE_CUSTOMER)
	userB, _ := createUser(t, db, "b@st.neu.edu.vn", constants.ROLE_CUSTOMER)
	_, adminToken := createUser(t, db, "admin@neu.edu.vn", constants.ROLE_ADMIN)

	orders := []model.Order{
		{PublicCode: "ORD-AAAA1111", UserId: &userA.ID, ReceiverName: "A", PhoneNumber: "09", DeliveryAddress: "x", TotalAmount: 1000, Status: constants.ORDER_STATUS_PENDING},
		{PublicCode: "ORD-BBBB2222", UserId: &userB.ID, ReceiverName: "B", PhoneNumber: "09", DeliveryAddress: "x", TotalAmount: 2000, Status: constants.ORDER_STATUS_PENDING},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	resp, out := doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/orders", nil, tokenA))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mine []model.Order
	require.NoError(t, jsonUnmarshal(out.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "ORD-AAAA1111", mine[0].PublicCode)

	resp, out = doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/orders", nil, adminToken))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all []model.Order
	require.NoError(t, jsonUnmarshal(out.Data, &all))
	assert.Len(t, all, 2)
}

func TestGetOrderDetail(t *testing.T) {
	app, db := setupApp(t)
	owner, ownerToken := createUser(t, db, "owner@st.neu.edu.vn", constants.ROLE_CUSTOMER)
	_, otherToken := createUser(t, db, "other@st.neu.edu.vn", constants.ROLE_CUSTOMER)
	_, adminToken := createUser(t, db, "admin@neu.edu.vn", constants.ROLE_ADMIN)
	dish := createDish(t, db, "Trà sữa", "tra-sua", 30000, nil)

	order := model.Order{
		PublicCode:      "ORD-CCCC3333",
		UserId:          &owner.ID,
		ReceiverName:    "Chủ đơn",
		PhoneNumber:     "0912345678",
		DeliveryAddress: "Ký túc xá NEU - Phòng 101",
		TotalAmount:     60000,
		Status:          constants.ORDER_STATUS_PENDING,
		Items: []model.OrderItem{
			{DishId: dish.ID, Quantity: 2, PriceAtTime: 30000},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	resp, out := doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/orders/code/ORD-CCCC3333", nil, ownerToken))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		OrderCode string `json:"orderCode"`
		QrCode    string `json:"qrCode"`
		Items     []struct {
			DishName    string `json:"dish_name"`
			PriceAtTime int    `json:"price_at_time"`
		} `json:"items"`
	}
	require.NoError(t, jsonUnmarshal(out.Data, &detail))
	assert.Equal(t, "ORD-CCCC3333", detail.OrderCode)
	assert.True(t, strings.HasPrefix(detail.QrCode, "data:image/png;base64,"))
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Trà sữa", detail.Items[0].DishName)
	assert.Equal(t, 30000, detail.Items[0].PriceAtTime)

	// Không phải chủ đơn, không phải admin
	resp, _ = doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/orders/code/ORD-CCCC3333", nil, otherToken))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/orders/code/ORD-CCCC3333", nil, adminToken))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, jsonRequest(http.MethodGet, "/api/v1/orders/code/ORD-KHONGCO", nil, adminToken))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateOrderStatus(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@neu.edu.vn", constants.ROLE_ADMIN)
	_, customerToken := createUser(t, db, "sv@st.neu.edu.vn", constants.ROLE_CUSTOMER)

	order := model.Order{
		PublicCode:      "ORD-DDDD4444",
		ReceiverName:    "A",
		PhoneNumber:     "09",
		DeliveryAddress: "x",
		TotalAmount:     1000,
		Status:          constants.ORDER_STATUS_PENDING,
	}
	require.NoError(t, db.Create(&order).Error)

	target := orderStatusURL(order.ID)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPut, target,
		fiber.Map{"status": constants.ORDER_STATUS_CONFIRMED}, adminToken))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, constants.ORDER_STATUS_CONFIRMED, updated.Status)

	// Trạng thái ngoài danh sách cho phép
	resp, out := doRequest(t, app, jsonRequest(http.MethodPut, target,
		fiber.Map{"status": "Teleported"}, adminToken))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.INVALID_ORDER_STATUS, out.Message)

	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, constants.ORDER_STATUS_CONFIRMED, updated.Status)

	// Customer không được đổi trạng thái
	resp, _ = doRequest(t, app, jsonRequest(http.MethodPut, target,
		fiber.Map{"status": constants.ORDER_STATUS_SHIPPING}, customerToken))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, jsonRequest(http.MethodPut, "/api/v1/orders/99999/status",
		fiber.Map{"status": constants.ORDER_STATUS_SHIPPING}, adminToken))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
