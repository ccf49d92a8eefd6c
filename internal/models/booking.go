package models

import (
	"time"
)

// Booking is a customer order: what was booked, when it must be delivered,
// and how much of it has been paid. Soft deletion uses the is_deleted flag
// rather than gorm.DeletedAt because the bin view lists deleted rows as
// ordinary data and restores them.
type Booking struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CustomerName   string    `gorm:"not null" json:"customer_name"`
	PhoneNumber    string    `gorm:"not null" json:"phone_number"`
	ClothColor     string    `json:"cloth_color,omitempty"`
	BookingDate    string    `gorm:"type:varchar(10);not null;index" json:"booking_date"`  // YYYY-MM-DD
	DeliveryDate   string    `gorm:"type:varchar(10);not null;index" json:"delivery_date"` // YYYY-MM-DD
	TotalAmount    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	AmountPaid     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount_paid"`
	IsEmergency    bool      `gorm:"not null;default:false" json:"is_emergency"`
	DeliveryStatus string    `gorm:"not null;default:'Not Delivered'" json:"delivery_status"`
	PaymentStatus  string    `gorm:"not null;default:'Pending'" json:"payment_status"`
	IsDeleted      bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName pins the table name.
func (Booking) TableName() string {
	return "bookings"
}
