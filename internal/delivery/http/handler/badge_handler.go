package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type BadgeHandler struct {
	uc usecase.BadgeUsecase
}

func NewBadgeHandler(uc usecase.BadgeUsecase) *BadgeHandler {
	return &BadgeHandler{uc: uc}
}

func (h *BadgeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/badge", h.Badge)
}

func (h *BadgeHandler) Badge(c fiber.Ctx) error {
	badge, err := h.uc.NotificationCount(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, badge)
}
