package config

import (
	"FreshKeep-Backend/internal/api/handlers"
	"FreshKeep-Backend/internal/api/routes"
	"FreshKeep-Backend/internal/middleware"
	"FreshKeep-Backend/internal/utils"
	"FreshKeep-Backend/pkg/auth"
	"FreshKeep-Backend/pkg/food"
	"FreshKeep-Backend/pkg/jwt"
	"FreshKeep-Backend/pkg/note"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ALLOW_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}

	// Repository
	foodRepository := food.NewFoodRepository(db)
	noteRepository := note.NewNoteRepository(db)

	// Service
	jwtService := jwt.NewJWTService(secretKey)
	verifier := auth.NewHTTPTokenVerifier(utils.GetConfig("IDENTITY_PROVIDER_URL"))
	authService := auth.NewAuthService(verifier, jwtService)
	foodService := food.NewFoodService(foodRepository, noteRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		AuthHandler: authHandler,
		FoodHandler: foodHandler,
		Middleware:  middlewares,
		JWTService:  jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
