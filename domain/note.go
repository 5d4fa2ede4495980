package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddNote  = "note added successfully"
	MessageSuccessGetNotes = "notes retrieved successfully"

	MessageFailedAddNote  = "failed to add note"
	MessageFailedGetNotes = "failed to retrieve notes"

	ErrNoteContentEmpty = errors.New("note content is required")
	ErrNotFoodOwner     = errors.New("not authorized to add notes to this food")
)

type (
	AddNoteRequest struct {
		Content   string `json:"content" validate:"required"`
		UserEmail string `json:"user_email" validate:"required,email"`
	}

	NoteResponse struct {
		ID        string    `json:"id"`
		FoodID    string    `json:"food_id"`
		Content   string    `json:"content"`
		UserEmail string    `json:"user_email"`
		CreatedAt time.Time `json:"created_at"`
	}
)
