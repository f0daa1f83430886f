package model

type User struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	FullName string `gorm:"not null" json:"fullname"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:customer" json:"role"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullname" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
