package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/dto"
	"directin/internal/delivery/http/middleware"
	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type setQueriesRequest struct {
	Queries []string `json:"queries"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/profile", h.GetProfile)
	r.Put("/profile/queries", h.SetQueries, auth)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	p, err := h.uc.GetProfile(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) SetQueries(c fiber.Ctx) error {
	var req setQueriesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	queries, err := h.uc.SetRoleQueries(c.Context(), req.Queries)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"queries": queries})
}
