package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/middleware"
	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type tokenRequest struct {
	AccessKey string `json:"access_key"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/token", h.Token)
}

func (h *AuthHandler) Token(c fiber.Ctx) error {
	var req tokenRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.IssueToken(req.AccessKey)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}
