package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"food_delivery/model"
)

func GenerateUniqueDishSlug(tx *gorm.DB, name string, excludeId *uint) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Dish{}).Where("slug = ?", result)
		if excludeId != nil {
			query = query.Where("id != ?", *excludeId)
		}
		query.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
