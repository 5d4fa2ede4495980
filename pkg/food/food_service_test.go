package food

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/note"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&entities.Food{}, &entities.Note{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func setupService(t *testing.T) (FoodService, FoodRepository, note.NoteRepository, *gorm.DB) {
	db := setupTestDB(t)
	foodRepo := NewFoodRepository(db)
	noteRepo := note.NewNoteRepository(db)
	return NewFoodService(foodRepo, noteRepo), foodRepo, noteRepo, db
}

func seedFood(t *testing.T, repo FoodRepository, owner string, expiryDate time.Time) *entities.Food {
	food := &entities.Food{
		ID:         uuid.New(),
		Title:      "Milk",
		Category:   "Dairy",
		Quantity:   "1 liter",
		ExpiryDate: expiryDate,
		UserEmail:  owner,
		AddedDate:  time.Now().UTC(),
	}
	require.NoError(t, repo.CreateFood(context.Background(), food))
	return food
}

func TestAddFood(t *testing.T) {
	service, _, _, _ := setupService(t)
	ctx := context.Background()

	res, err := service.AddFood(ctx, domain.AddFoodRequest{
		Title:      "Cheddar",
		Category:   "Dairy",
		Quantity:   "200 g",
		ExpiryDate: "2030-01-15",
		UserEmail:  "alice@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "alice@example.com", res.UserEmail)
	assert.Equal(t, "Fresh", res.Status)
	assert.False(t, res.AddedDate.IsZero())
}

func TestAddFoodInvalidCategory(t *testing.T) {
	service, _, _, db := setupService(t)

	_, err := service.AddFood(context.Background(), domain.AddFoodRequest{
		Title:      "Mystery",
		Category:   "Electronics",
		Quantity:   "1",
		ExpiryDate: "2030-01-15",
		UserEmail:  "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	var count int64
	db.Model(&entities.Food{}).Count(&count)
	assert.Zero(t, count, "nothing should be persisted on validation failure")
}

func TestAddFoodInvalidExpiryDate(t *testing.T) {
	service, _, _, _ := setupService(t)

	_, err := service.AddFood(context.Background(), domain.AddFoodRequest{
		Title:      "Milk",
		Category:   "Dairy",
		Quantity:   "1 liter",
		ExpiryDate: "not-a-date",
		UserEmail:  "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestAddFoodAcceptsRFC3339(t *testing.T) {
	service, _, _, _ := setupService(t)

	res, err := service.AddFood(context.Background(), domain.AddFoodRequest{
		Title:      "Juice",
		Category:   "Beverages",
		Quantity:   "1 bottle",
		ExpiryDate: "2030-01-15T08:30:00Z",
		UserEmail:  "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2030, res.ExpiryDate.Year())
}

func TestGetFoodByIDNotFound(t *testing.T) {
	service, _, _, _ := setupService(t)

	_, err := service.GetFoodByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestGetFoodByIDStatusComputedOnRead(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)

	expired := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(-24*time.Hour))

	res, err := service.GetFoodByID(context.Background(), expired.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Expired", res.Status)
}

func TestUpdateFood(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)
	ctx := context.Background()

	food := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))

	res, err := service.UpdateFood(ctx, food.ID.String(), domain.UpdateFoodRequest{
		Title:    "Whole milk",
		Quantity: "2 liters",
	}, "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Whole milk", res.Title)
	assert.Equal(t, "2 liters", res.Quantity)
	assert.Equal(t, "alice@example.com", res.UserEmail, "owner must survive updates")
}

func TestUpdateFoodNotFound(t *testing.T) {
	service, _, _, db := setupService(t)

	_, err := service.UpdateFood(context.Background(), uuid.NewString(), domain.UpdateFoodRequest{Title: "x"}, "alice@example.com")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	var count int64
	db.Model(&entities.Food{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateFoodInvalidCategory(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)

	food := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))

	_, err := service.UpdateFood(context.Background(), food.ID.String(), domain.UpdateFoodRequest{Category: "Plastics"}, "alice@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestDeleteFoodCascadesNotes(t *testing.T) {
	service, foodRepo, noteRepo, _ := setupService(t)
	ctx := context.Background()

	food := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))
	for i := 0; i < 3; i++ {
		require.NoError(t, noteRepo.CreateNote(ctx, &entities.Note{
			ID:        uuid.New(),
			FoodID:    food.ID,
			Content:   "keep refrigerated",
			UserEmail: "alice@example.com",
			CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, service.DeleteFood(ctx, food.ID.String(), "bob@example.com"))

	_, err := service.GetFoodByID(ctx, food.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	notes, err := service.GetNotes(ctx, food.ID.String())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteFoodNotFound(t *testing.T) {
	service, foodRepo, noteRepo, _ := setupService(t)
	ctx := context.Background()

	other := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))
	require.NoError(t, noteRepo.CreateNote(ctx, &entities.Note{
		ID:        uuid.New(),
		FoodID:    other.ID,
		Content:   "unrelated",
		UserEmail: "alice@example.com",
		CreatedAt: time.Now().UTC(),
	}))

	err := service.DeleteFood(ctx, uuid.NewString(), "alice@example.com")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	notes, err := service.GetNotes(ctx, other.ID.String())
	require.NoError(t, err)
	assert.Len(t, notes, 1, "a failed delete must not touch other foods' notes")
}

func TestAddNoteOwnerOnly(t *testing.T) {
	service, foodRepo, _, db := setupService(t)
	ctx := context.Background()

	food := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))

	_, err := service.AddNote(ctx, food.ID.String(), domain.AddNoteRequest{
		Content:   "half used",
		UserEmail: "bob@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrNotFoodOwner)

	var count int64
	db.Model(&entities.Note{}).Count(&count)
	assert.Zero(t, count, "denied note must not be persisted")

	res, err := service.AddNote(ctx, food.ID.String(), domain.AddNoteRequest{
		Content:   "half used",
		UserEmail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, food.ID.String(), res.FoodID)
	assert.Equal(t, "half used", res.Content)
}

func TestAddNoteFoodNotFound(t *testing.T) {
	service, _, _, _ := setupService(t)

	_, err := service.AddNote(context.Background(), uuid.NewString(), domain.AddNoteRequest{
		Content:   "anything",
		UserEmail: "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestAddNoteEmptyContent(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)

	food := seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))

	_, err := service.AddNote(context.Background(), food.ID.String(), domain.AddNoteRequest{
		UserEmail: "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrNoteContentEmpty)
}

func TestGetFoodStats(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)
	now := time.Now().UTC()

	seedFood(t, foodRepo, "alice@example.com", now.Add(-72*time.Hour))
	seedFood(t, foodRepo, "alice@example.com", now.Add(-time.Hour))
	seedFood(t, foodRepo, "bob@example.com", now.Add(48*time.Hour))
	for i := 0; i < 4; i++ {
		seedFood(t, foodRepo, "bob@example.com", now.Add(30*24*time.Hour))
	}

	stats, err := service.GetFoodStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Expired)
	assert.Equal(t, int64(1), stats.NearlyExpired)
	assert.Equal(t, int64(7), stats.Total)
}

func TestListOrderings(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	older := &entities.Food{
		ID: uuid.New(), Title: "Old bread", Category: "Grains", Quantity: "1 loaf",
		ExpiryDate: now.Add(24 * time.Hour), UserEmail: "alice@example.com",
		AddedDate: now.Add(-48 * time.Hour),
	}
	newer := &entities.Food{
		ID: uuid.New(), Title: "New bread", Category: "Grains", Quantity: "1 loaf",
		ExpiryDate: now.Add(96 * time.Hour), UserEmail: "alice@example.com",
		AddedDate: now,
	}
	require.NoError(t, foodRepo.CreateFood(ctx, older))
	require.NoError(t, foodRepo.CreateFood(ctx, newer))

	foods, err := service.GetFoods(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "New bread", foods[0].Title, "list is added_date descending")

	nearly, err := service.GetNearlyExpiredFoods(ctx)
	require.NoError(t, err)
	require.Len(t, nearly, 2)
	assert.Equal(t, "Old bread", nearly[0].Title, "nearly-expired is expiry ascending")
}

func TestGetFoodsByOwner(t *testing.T) {
	service, foodRepo, _, _ := setupService(t)

	seedFood(t, foodRepo, "alice@example.com", time.Now().UTC().Add(48*time.Hour))
	seedFood(t, foodRepo, "bob@example.com", time.Now().UTC().Add(48*time.Hour))

	foods, err := service.GetFoodsByOwner(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "alice@example.com", foods[0].UserEmail)
}
