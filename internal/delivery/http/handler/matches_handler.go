package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/dto"
	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type MatchesHandler struct {
	uc usecase.MatchesUsecase
}

func NewMatchesHandler(uc usecase.MatchesUsecase) *MatchesHandler {
	return &MatchesHandler{uc: uc}
}

func (h *MatchesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/matches", h.List)
}

func (h *MatchesHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListAllMatches(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponses(items))
}
