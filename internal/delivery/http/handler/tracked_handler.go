package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/dto"
	"directin/internal/delivery/http/middleware"
	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type TrackedHandler struct {
	uc usecase.TrackedUsecase
}

type trackRequest struct {
	CompanyID string `json:"company_id"`
	JobID     string `json:"job_id"`
}

func NewTrackedHandler(uc usecase.TrackedUsecase) *TrackedHandler {
	return &TrackedHandler{uc: uc}
}

func (h *TrackedHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/tracked", h.List)
	r.Post("/tracked", h.Track, auth)
	r.Delete("/tracked/:jobId", h.Untrack, auth)
}

func (h *TrackedHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTrackedJobResponses(jobs))
}

func (h *TrackedHandler) Track(c fiber.Ctx) error {
	var req trackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	job, err := h.uc.Track(c.Context(), req.CompanyID, req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewTrackedJobResponse(job))
}

func (h *TrackedHandler) Untrack(c fiber.Ctx) error {
	if err := h.uc.Untrack(c.Context(), c.Params("jobId")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
