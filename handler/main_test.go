package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food_delivery/database"
	"food_delivery/handler"
	"food_delivery/helper"
	"food_delivery/model"
	"food_delivery/router"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dbName := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// setupApp dựng app với sqlite in-memory (bật foreign keys) cho mỗi test
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)

	app := fiber.New()
	h := handler.New(db, nil)
	router.SetupRoutes(app, h, db, nil)
	return app, db
}

// setupAppWithRedis như setupApp nhưng có kho token thu hồi thật (miniredis)
func setupAppWithRedis(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := fiber.New()
	h := handler.New(db, rdb)
	router.SetupRoutes(app, h, db, rdb)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) (model.User, string) {
	t.Helper()
	hashed, err := helper.HashPassword("secret123")
	require.NoError(t, err)

	user := model.User{
		Email:    email,
		FullName: "Người dùng test",
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	require.NoError(t, err)
	return user, token
}

func createCategory(t *testing.T, db *gorm.DB, name string) model.Category {
	t.Helper()
	category := model.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createDish(t *testing.T, db *gorm.DB, name, dishSlug string, price int, categoryId *uint) model.Dish {
	t.Helper()
	dish := model.Dish{Name: name, Slug: dishSlug, Price: price, CategoryId: categoryId}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

func jsonRequest(method, target string, body any, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	KeyError string          `json:"keyError"`
	Data     json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func validOrderBody(items []fiber.Map) fiber.Map {
	return fiber.Map{
		"receiver_name":  "Nguyễn Văn A",
		"phone_number":   "0912345678",
		"area_address":   "Ký túc xá NEU",
		"detail_address": "Phòng 101 nhà 11",
		"payment_method": "COD",
		"cart_items":     items,
	}
}

func jsonUnmarshal(raw json.RawMessage, v any) error {
	return json.Unmarshal(raw, v)
}

func orderStatusURL(orderId uint) string {
	return fmt.Sprintf("/api/v1/orders/%d/status", orderId)
}
