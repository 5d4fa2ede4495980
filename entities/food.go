package entities

import (
	"time"

	"github.com/google/uuid"
)

type Food struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"` // "Dairy", "Meat", "Vegetables", "Fruits", "Snacks", "Beverages", "Grains"
	Quantity    string    `json:"quantity"`
	ExpiryDate  time.Time `gorm:"index" json:"expiry_date"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	UserEmail   string    `gorm:"index" json:"user_email"`
	AddedDate   time.Time `json:"added_date"`

	Timestamp
}
