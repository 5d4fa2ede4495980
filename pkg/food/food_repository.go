package food

import (
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/expiry"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error
		GetFoods(ctx context.Context) ([]*entities.Food, error)
		GetNearlyExpiredFoods(ctx context.Context, now time.Time) ([]*entities.Food, error)
		GetExpiredFoods(ctx context.Context, now time.Time) ([]*entities.Food, error)
		GetFoodsByOwner(ctx context.Context, userEmail string) ([]*entities.Food, error)
		GetFoodStats(ctx context.Context, now time.Time) (map[string]int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food

	if err := r.db.WithContext(ctx).
		Order("added_date desc").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetNearlyExpiredFoods(ctx context.Context, now time.Time) ([]*entities.Food, error) {
	var foods []*entities.Food

	windowEnd := now.Add(expiry.DefaultWindow)
	if err := r.db.WithContext(ctx).
		Where("expiry_date >= ? AND expiry_date <= ?", now, windowEnd).
		Order("expiry_date asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetExpiredFoods(ctx context.Context, now time.Time) ([]*entities.Food, error) {
	var foods []*entities.Food

	if err := r.db.WithContext(ctx).
		Where("expiry_date < ?", now).
		Order("expiry_date desc").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetFoodsByOwner(ctx context.Context, userEmail string) ([]*entities.Food, error) {
	var foods []*entities.Food

	if err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("added_date desc").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetFoodStats(ctx context.Context, now time.Time) (map[string]int64, error) {
	var expired, nearlyExpired, total int64

	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("expiry_date < ?", now).
		Count(&expired).Error; err != nil {
		return nil, err
	}

	windowEnd := now.Add(expiry.DefaultWindow)
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("expiry_date >= ? AND expiry_date <= ?", now, windowEnd).
		Count(&nearlyExpired).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Count(&total).Error; err != nil {
		return nil, err
	}

	stats := map[string]int64{
		"expired":        expired,
		"nearly_expired": nearlyExpired,
		"total":          total,
	}

	return stats, nil
}
