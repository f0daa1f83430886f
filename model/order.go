package model

type Order struct {
	DTO
	PublicCode      string      `gorm:"unique;size:20" json:"publicCode"`
	UserId          *uint       `json:"user_id"` // NULL nếu khách vãng lai (guest)
	User            *User       `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty"`
	ReceiverName    string      `gorm:"not null" json:"receiver_name"`
	PhoneNumber     string      `gorm:"not null" json:"phone_number"`
	DeliveryAddress string      `gorm:"not null" json:"delivery_address"`
	TotalAmount     int         `gorm:"not null" json:"total_amount"`
	Status          string      `gorm:"default:Pending" json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	Items           []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	DTO
	OrderId     uint  `gorm:"not null" json:"order_id"`
	DishId      uint  `gorm:"not null" json:"dish_id"`
	Dish        *Dish `json:"dish,omitempty"`
	Quantity    int   `gorm:"not null" json:"quantity"`
	PriceAtTime int   `gorm:"not null" json:"price_at_time"` // Giá chốt tại thời điểm đặt, không đổi theo catalog
}

type CartItemInput struct {
	DishId   uint `json:"dish_id" validate:"required"`
	Price    int  `json:"price" validate:"gte=0"`
	Quantity int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderInput struct {
	ReceiverName  string          `json:"receiver_name" validate:"required"`
	PhoneNumber   string          `json:"phone_number" validate:"required"`
	AreaAddress   string          `json:"area_address" validate:"required"`
	DetailAddress string          `json:"detail_address" validate:"required"`
	PaymentMethod string          `json:"payment_method"`
	CartItems     []CartItemInput `json:"cart_items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}
