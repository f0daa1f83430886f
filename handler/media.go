package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"food_delivery/config"
	"food_delivery/utils"
)

// GenerateSignature ký tham số upload để client đẩy ảnh thẳng lên Cloudinary
func (h *Handler) GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // Parse nhưng không ký
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder // Giá trị raw, không escape
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = fmt.Sprintf("%d", timestamp)

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	hash := sha1.New()
	hash.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(hash.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
