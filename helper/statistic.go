package helper

import (
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/model"
)

// ComputeStatistics tổng hợp số liệu cho trang quản trị.
// Doanh thu chỉ tính các đơn đã giao (Delivered); trả về 0 khi chưa có đơn nào.
func ComputeStatistics(db *gorm.DB) (model.Statistics, error) {
	var stats model.Statistics

	if err := db.Model(&model.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Dish{}).Count(&stats.TotalProducts).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Order{}).
		Where("status = ?", constants.ORDER_STATUS_DELIVERED).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
