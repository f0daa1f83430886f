package utils

import (
	"html"
	"log"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse trả về envelope lỗi thống nhất {success, message}.
// Chi tiết lỗi chỉ ghi log phía server, không gửi cho client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Printf("[%d] %s: %v", status, message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	if err != nil {
		log.Printf("[%d] %s (%s): %v", status, message, keyError, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success":  false,
		"message":  message,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// SanitizeInput làm sạch chuỗi từ client: trim, bỏ ký tự điều khiển,
// escape markup trước khi lưu
func SanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return html.EscapeString(s)
}

func Ptr[T any](v T) *T {
	return &v
}
