package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFood        = "food added successfully"
	MessageSuccessUpdateFood     = "food updated successfully"
	MessageSuccessDeleteFood     = "food deleted successfully"
	MessageSuccessGetFoods       = "foods retrieved successfully"
	MessageSuccessGetFoodStats   = "food statistics retrieved successfully"
	MessageSuccessGetFoodDetails = "food retrieved successfully"

	MessageFailedAddFood        = "failed to add food"
	MessageFailedUpdateFood     = "failed to update food"
	MessageFailedDeleteFood     = "failed to delete food"
	MessageFailedGetFoods       = "failed to retrieve foods"
	MessageFailedGetFoodStats   = "failed to retrieve food statistics"
	MessageFailedGetFoodDetails = "failed to retrieve food"

	ErrFoodNotFound      = errors.New("food not found")
	ErrInvalidCategory   = errors.New("invalid food category")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidAddedDate  = errors.New("invalid added date")
	ErrMissingOwnerEmail = errors.New("owner email is required")
)

// FoodCategories is the fixed category set; requests outside it are
// rejected before anything is persisted.
var FoodCategories = []string{"Dairy", "Meat", "Vegetables", "Fruits", "Snacks", "Beverages", "Grains"}

type (
	AddFoodRequest struct {
		Title       string `json:"title" validate:"required"`
		Category    string `json:"category" validate:"required,oneof=Dairy Meat Vegetables Fruits Snacks Beverages Grains"`
		Quantity    string `json:"quantity" validate:"required"`
		ExpiryDate  string `json:"expiry_date" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		ImageURL    string `json:"image_url" validate:"omitempty"`
		UserEmail   string `json:"user_email" validate:"required,email"`
		AddedDate   string `json:"added_date" validate:"omitempty"`
	}

	UpdateFoodRequest struct {
		Title       string `json:"title" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty,oneof=Dairy Meat Vegetables Fruits Snacks Beverages Grains"`
		Quantity    string `json:"quantity" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		ImageURL    string `json:"image_url" validate:"omitempty"`
	}

	FoodResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Category    string    `json:"category"`
		Quantity    string    `json:"quantity"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Description string    `json:"description,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		UserEmail   string    `json:"user_email"`
		AddedDate   time.Time `json:"added_date"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	FoodStatsResponse struct {
		Expired       int64 `json:"expired"`
		NearlyExpired int64 `json:"nearly_expired"`
		Total         int64 `json:"total"`
	}
)
