package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type RefreshHandler struct {
	uc usecase.RefreshUsecase
}

func NewRefreshHandler(uc usecase.RefreshUsecase) *RefreshHandler {
	return &RefreshHandler{uc: uc}
}

func (h *RefreshHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/refresh", h.Refresh, auth)
}

// Refresh runs a full fetch cycle synchronously and returns the summary.
// A concurrent run answers 409.
func (h *RefreshHandler) Refresh(c fiber.Ctx) error {
	summary, err := h.uc.RefreshAll(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}
