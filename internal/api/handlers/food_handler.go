package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetNearlyExpiredFoods(c *fiber.Ctx) error
		GetExpiredFoods(c *fiber.Ctx) error
		GetFoodStats(c *fiber.Ctx) error
		GetFoodsByUser(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		GetNotes(c *fiber.Ctx) error
		AddNote(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetNearlyExpiredFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetNearlyExpiredFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetExpiredFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetExpiredFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodStats(c *fiber.Ctx) error {
	stats, err := h.foodService.GetFoodStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoodStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetFoodStats)
}

func (h *foodHandler) GetFoodsByUser(c *fiber.Ctx) error {
	userEmail := c.Params("email")

	foods, err := h.foodService.GetFoodsByOwner(c.Context(), userEmail)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	foodID := c.Params("id")

	item, err := h.foodService.GetFoodByID(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoodDetails, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": item}, fiber.StatusOK, domain.MessageSuccessGetFoodDetails)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	callerEmail := c.Locals("email").(string)
	foodID := c.Params("id")
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), foodID, *req, callerEmail)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	callerEmail := c.Locals("email").(string)
	foodID := c.Params("id")

	if err := h.foodService.DeleteFood(c.Context(), foodID, callerEmail); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) GetNotes(c *fiber.Ctx) error {
	foodID := c.Params("id")

	notes, err := h.foodService.GetNotes(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetNotes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"notes": notes}, fiber.StatusOK, domain.MessageSuccessGetNotes)
}

func (h *foodHandler) AddNote(c *fiber.Ctx) error {
	foodID := c.Params("id")
	req := new(domain.AddNoteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddNote, err)
	}

	res, err := h.foodService.AddNote(c.Context(), foodID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddNote, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"note": res}, fiber.StatusCreated, domain.MessageSuccessAddNote)
}
