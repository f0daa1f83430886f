package helper

import (
	"strings"

	"food_delivery/constants"
)

// NormalizeImageUrl chuẩn hóa đường dẫn ảnh món ăn (tránh 404 / double prefix).
// Nếu image_url đã là đường dẫn đầy đủ (http://, https://), bắt đầu bằng '/'
// hoặc đã có tiền tố 'images/' thì giữ nguyên; ngược lại thêm tiền tố 'images/'.
func NormalizeImageUrl(raw string) string {
	img := strings.TrimSpace(raw)
	if img == "" {
		return img
	}

	lower := strings.ToLower(img)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "/") ||
		strings.HasPrefix(lower, constants.IMAGE_FOLDER) {
		return img
	}
	return constants.IMAGE_FOLDER + img
}
