package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"food_delivery/constants"
	"food_delivery/helper"
	"food_delivery/model"
	"food_delivery/utils"
)

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(24 * time.Hour * 7),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing login input"))
	}

	user, err := helper.GetUserByEmail(h.DB, input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	// Không tiết lộ email sai hay mật khẩu sai
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("credentials mismatch"))
	}

	tokenClaim := model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, accessToken, refreshToken)

	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOGIN_SUCCESS, fiber.Map{
		"id":          user.ID,
		"fullname":    user.FullName,
		"email":       user.Email,
		"role":        user.Role,
		"accessToken": accessToken,
	})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing register input"))
	}

	existing, err := helper.GetUserByEmail(h.DB, input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email already registered"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := model.User{
		Email:    input.Email,
		FullName: input.FullName,
		Password: hashed,
		Role:     constants.ROLE_CUSTOMER,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// Email trùng chen ngang giữa bước check và bước create
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, constants.REGISTER_SUCCESS, fiber.Map{
		"id":       user.ID,
		"fullname": user.FullName,
		"email":    user.Email,
		"role":     user.Role,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	// Có token thì thu hồi, guest thì chỉ xóa cookie
	if token, ok := c.Locals("user").(*jwt.Token); ok && token != nil {
		if err := helper.RevokeToken(c.Context(), h.Rdb, token); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	clearAuthCookies(c)
	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOGOUT_SUCCESS, nil)
}

func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("refresh token not found"))
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}
	if helper.IsTokenRevoked(c.Context(), h.Rdb, token) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("token revoked"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("invalid token claims"))
	}
	idFloat, ok := claims["id"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("invalid id in payload"))
	}

	var user model.User
	if err := h.DB.First(&user, uint(idFloat)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	tokenClaim := model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// update lại cookie
	setAuthCookies(c, newAccessToken, newRefreshToken)

	tokenData := model.TokenData{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "refresh success", tokenData)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	claim, _, err := helper.GetInfoUserFromToken(c, h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	var user model.User
	if err := h.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Người dùng đã đăng nhập.", fiber.Map{
		"id":       user.ID,
		"fullname": user.FullName,
		"email":    user.Email,
		"role":     user.Role,
	})
}
