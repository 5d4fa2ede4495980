package entities

import (
	"time"

	"github.com/google/uuid"
)

// Note carries no foreign key constraint to Food; the service checks
// the parent exists before creating one.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodID    uuid.UUID `gorm:"index" json:"food_id"`
	Content   string    `gorm:"type:text" json:"content"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}
