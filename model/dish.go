package model

type Dish struct {
	DTO
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"unique;size:255" json:"slug"`
	Description string    `json:"description"`
	Price       int       `gorm:"not null;check:price >= 0" json:"price"`
	ImageUrl    string    `json:"image_url"`
	CategoryId  *uint     `json:"category_id"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	IsAvailable *bool     `gorm:"default:true" json:"isAvailable"`
}

type SaveDishInput struct {
	Id          *uint  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"gte=0"`
	ImageUrl    string `json:"image_url"`
	CategoryId  *uint  `json:"category_id"`
	IsAvailable *bool  `json:"isAvailable"`
}

type FilterDish struct {
	CategoryId *uint `query:"category_id"`
}
