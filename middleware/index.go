package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/helper"
	"food_delivery/utils"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")

	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func Protected(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		// Token đã logout thì không dùng lại được
		if helper.IsTokenRevoked(c.Context(), rdb, jwtToken) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("token revoked"))
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly kiểm tra role trong database, dùng sau Protected
func AdminOnly(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, err := helper.GetInfoUserFromToken(c, db)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
		}
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}

// OptionalJWT gắn token vào Locals nếu có, cho phép guest đi tiếp.
// Token đã thu hồi (logout) được coi như guest, không gắn danh tính.
func OptionalJWT(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid || helper.IsTokenRevoked(c.Context(), rdb, jwtToken) {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
