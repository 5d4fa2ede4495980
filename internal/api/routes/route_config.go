package routes

import (
	"FreshKeep-Backend/internal/api/handlers"
	"FreshKeep-Backend/internal/middleware"
	"FreshKeep-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	AuthHandler handlers.AuthHandler
	FoodHandler handlers.FoodHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Foods()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/verify-token", c.AuthHandler.VerifyToken)
		auth.Post("/logout", c.AuthHandler.Logout)
	}
}

func (c *Config) Foods() {
	requireAuth := c.Middleware.AuthMiddleware(c.JWTService)

	foods := c.App.Group("/api/foods")
	{
		// public reads; fixed paths registered before /:id
		foods.Get("", c.FoodHandler.GetFoods)
		foods.Get("/nearly-expired", c.FoodHandler.GetNearlyExpiredFoods)
		foods.Get("/expired", c.FoodHandler.GetExpiredFoods)
		foods.Get("/stats", c.FoodHandler.GetFoodStats)
		foods.Get("/user/:email", requireAuth, c.FoodHandler.GetFoodsByUser)
		foods.Get("/:id", c.FoodHandler.GetFoodDetails)
		foods.Get("/:id/notes", c.FoodHandler.GetNotes)

		// authenticated writes
		foods.Post("", requireAuth, c.FoodHandler.AddFood)
		foods.Put("/:id", requireAuth, c.FoodHandler.UpdateFood)
		foods.Delete("/:id", requireAuth, c.FoodHandler.DeleteFood)
		foods.Post("/:id/notes", requireAuth, c.FoodHandler.AddNote)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
