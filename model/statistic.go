package model

type Statistics struct {
	TotalOrders     int64 `json:"total_orders"`
	TotalProducts   int64 `json:"total_products"`
	TotalCategories int64 `json:"total_categories"`
	TotalRevenue    int64 `json:"total_revenue"`
}
