package food

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/expiry"
	"FreshKeep-Backend/pkg/note"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetNearlyExpiredFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetExpiredFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetFoodStats(ctx context.Context) (domain.FoodStatsResponse, error)
		GetFoodsByOwner(ctx context.Context, userEmail string) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, callerEmail string) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string, callerEmail string) error
		GetNotes(ctx context.Context, foodID string) ([]domain.NoteResponse, error)
		AddNote(ctx context.Context, foodID string, req domain.AddNoteRequest) (domain.NoteResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		noteRepository note.NoteRepository
	}
)

func NewFoodService(foodRepository FoodRepository, noteRepository note.NoteRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		noteRepository: noteRepository,
	}
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetNearlyExpiredFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetNearlyExpiredFoods(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetExpiredFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetExpiredFoods(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodStats(ctx context.Context) (domain.FoodStatsResponse, error) {
	stats, err := s.foodRepository.GetFoodStats(ctx, time.Now())
	if err != nil {
		return domain.FoodStatsResponse{}, err
	}

	return domain.FoodStatsResponse{
		Expired:       stats["expired"],
		NearlyExpired: stats["nearly_expired"],
		Total:         stats["total"],
	}, nil
}

func (s *foodService) GetFoodsByOwner(ctx context.Context, userEmail string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoodsByOwner(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food, time.Now()), nil
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	if !isValidCategory(req.Category) {
		return domain.FoodResponse{}, domain.ErrInvalidCategory
	}

	if req.UserEmail == "" {
		return domain.FoodResponse{}, domain.ErrMissingOwnerEmail
	}

	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrInvalidExpiryDate
	}

	addedDate := time.Now()
	if req.AddedDate != "" {
		addedDate, err = parseDate(req.AddedDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidAddedDate
		}
	}

	food := &entities.Food{
		ID:          uuid.New(),
		Title:       req.Title,
		Category:    req.Category,
		Quantity:    req.Quantity,
		ExpiryDate:  expiryDate,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		UserEmail:   req.UserEmail,
		AddedDate:   addedDate,
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food, time.Now()), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, callerEmail string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if !CanMutateFood(callerEmail, food) {
		return domain.FoodResponse{}, domain.ErrNotFoodOwner
	}

	if req.Title != "" {
		food.Title = req.Title
	}

	if req.Category != "" {
		if !isValidCategory(req.Category) {
			return domain.FoodResponse{}, domain.ErrInvalidCategory
		}
		food.Category = req.Category
	}

	if req.Quantity != "" {
		food.Quantity = req.Quantity
	}

	if req.ExpiryDate != "" {
		expiryDate, err := parseDate(req.ExpiryDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidExpiryDate
		}
		food.ExpiryDate = expiryDate
	}

	if req.Description != "" {
		food.Description = req.Description
	}

	if req.ImageURL != "" {
		food.ImageURL = req.ImageURL
	}

	// UserEmail is set once at creation and never rewritten here.

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food, time.Now()), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, callerEmail string) error {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if !CanMutateFood(callerEmail, food) {
		return domain.ErrNotFoodOwner
	}

	if err := s.foodRepository.DeleteFood(ctx, id); err != nil {
		return err
	}

	// Two statements, no transaction; a failure here leaves orphaned
	// notes referencing the deleted food.
	return s.noteRepository.DeleteNotesByFoodID(ctx, id)
}

func (s *foodService) GetNotes(ctx context.Context, foodID string) ([]domain.NoteResponse, error) {
	notes, err := s.noteRepository.GetNotesByFoodID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NoteResponse, 0, len(notes))
	for _, n := range notes {
		response = append(response, toNoteResponse(n))
	}

	return response, nil
}

func (s *foodService) AddNote(ctx context.Context, foodID string, req domain.AddNoteRequest) (domain.NoteResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NoteResponse{}, domain.ErrFoodNotFound
		}
		return domain.NoteResponse{}, err
	}

	if !CanAddNote(req.UserEmail, food) {
		return domain.NoteResponse{}, domain.ErrNotFoodOwner
	}

	if req.Content == "" {
		return domain.NoteResponse{}, domain.ErrNoteContentEmpty
	}

	n := &entities.Note{
		ID:        uuid.New(),
		FoodID:    food.ID,
		Content:   req.Content,
		UserEmail: req.UserEmail,
		CreatedAt: time.Now(),
	}

	if err := s.noteRepository.CreateNote(ctx, n); err != nil {
		return domain.NoteResponse{}, err
	}

	return toNoteResponse(n), nil
}

func isValidCategory(category string) bool {
	for _, c := range domain.FoodCategories {
		if c == category {
			return true
		}
	}
	return false
}

// parseDate accepts the date-only form used by the web client and full
// RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func toFoodResponse(food *entities.Food, now time.Time) domain.FoodResponse {
	return domain.FoodResponse{
		ID:          food.ID.String(),
		Title:       food.Title,
		Category:    food.Category,
		Quantity:    food.Quantity,
		ExpiryDate:  food.ExpiryDate,
		Description: food.Description,
		ImageURL:    food.ImageURL,
		UserEmail:   food.UserEmail,
		AddedDate:   food.AddedDate,
		Status:      string(expiry.Classify(now, food.ExpiryDate)),
		CreatedAt:   food.CreatedAt,
		UpdatedAt:   food.UpdatedAt,
	}
}

func toFoodResponses(foods []*entities.Food) []domain.FoodResponse {
	now := time.Now()
	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, toFoodResponse(food, now))
	}
	return response
}

func toNoteResponse(n *entities.Note) domain.NoteResponse {
	return domain.NoteResponse{
		ID:        n.ID.String(),
		FoodID:    n.FoodID.String(),
		Content:   n.Content,
		UserEmail: n.UserEmail,
		CreatedAt: n.CreatedAt,
	}
}
