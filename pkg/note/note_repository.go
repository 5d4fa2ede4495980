package note

import (
	"FreshKeep-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NoteRepository interface {
		CreateNote(ctx context.Context, note *entities.Note) error
		GetNotesByFoodID(ctx context.Context, foodID string) ([]*entities.Note, error)
		DeleteNotesByFoodID(ctx context.Context, foodID string) error
	}

	noteRepository struct {
		db *gorm.DB
	}
)

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateNote(ctx context.Context, note *entities.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetNotesByFoodID(ctx context.Context, foodID string) ([]*entities.Note, error) {
	var notes []*entities.Note

	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at desc").
		Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// DeleteNotesByFoodID is idempotent; deleting zero notes is not an error.
func (r *noteRepository) DeleteNotesByFoodID(ctx context.Context, foodID string) error {
	return r.db.WithContext(ctx).Where("food_id = ?", foodID).Delete(&entities.Note{}).Error
}
