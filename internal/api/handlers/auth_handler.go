package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/auth"
	"FreshKeep-Backend/pkg/jwt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		VerifyToken(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) VerifyToken(c *fiber.Ctx) error {
	req := new(domain.VerifyTokenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyToken, domain.ErrIDTokenRequired)
	}

	res, err := h.authService.VerifyToken(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedVerifyToken, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    res.Token,
		Expires:  time.Now().Add(jwt.TokenLifetime),
		HTTPOnly: true,
		SameSite: "Strict",
	})

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyToken)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
	})

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}
