package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/middleware"
	"directin/internal/pkg/response"
	"directin/internal/usecase"
)

// mapUsecaseError translates usecase sentinels to transport errors. The
// wrapped detail message rides along as the response message; internal
// causes are masked by the error middleware.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrRefreshInFlight):
		return middleware.NewAppError(fiber.StatusConflict, "Refresh already in progress", nil, err)
	case errors.Is(err, usecase.ErrLimitExceeded):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnsupportedBoard):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
