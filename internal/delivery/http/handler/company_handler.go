package handler

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/dto"
	"directin/internal/delivery/http/middleware"
	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

type CompanyHandler struct {
	profiles usecase.ProfileUsecase
	matches  usecase.MatchesUsecase
}

type addCompanyRequest struct {
	// Company accepts a directory id, a Greenhouse board URL, or a bare
	// board slug.
	Company string `json:"company"`
}

func NewCompanyHandler(profiles usecase.ProfileUsecase, matches usecase.MatchesUsecase) *CompanyHandler {
	return &CompanyHandler{profiles: profiles, matches: matches}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/companies/suggest", h.Suggest)
	r.Get("/companies", h.List)
	r.Post("/companies", h.Add, auth)
	r.Delete("/companies/:id", h.Remove, auth)
	r.Get("/companies/:id/matches", h.CompanyMatches)
}

func (h *CompanyHandler) Suggest(c fiber.Ctx) error {
	suggestions, err := h.profiles.SuggestCompanies(c.Context(), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponses(suggestions))
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	overviews, err := h.matches.CompanyOverviews(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyOverviewResponses(overviews))
}

func (h *CompanyHandler) Add(c fiber.Ctx) error {
	var req addCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	company, err := h.profiles.AddCompany(c.Context(), req.Company)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewCompanyResponse(company))
}

func (h *CompanyHandler) Remove(c fiber.Ctx) error {
	if err := h.profiles.RemoveCompany(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CompanyHandler) CompanyMatches(c fiber.Ctx) error {
	items, err := h.matches.ListCompanyMatches(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponses(items))
}
