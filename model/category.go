package model

type Category struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `gorm:"default:true" json:"isActive"`
	Dishes      []Dish `gorm:"foreignKey:CategoryId" json:"dishes,omitempty"`
}

// SaveCategoryInput dùng cho cả tạo mới và cập nhật: Id có giá trị ⇒ update
type SaveCategoryInput struct {
	Id          *uint  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}
