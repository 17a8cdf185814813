// Package http wires the Fiber routes, middleware and handlers.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain"
)

// ErrorHandler is the app-wide Fiber error handler. Every handler and
// middleware returns plain errors; this single place maps the domain
// error types to status codes and renders the uniform {"msg": ...} body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		authnErr     *domain.AuthenticationError
		authzErr     *domain.AuthorizationError
		badReqErr    *domain.BadRequestError
		notFoundErr  *domain.NotFoundError
		duplicateErr *domain.DuplicateKeyError
		validErr     *domain.ValidationError
		fiberErr     *fiber.Error
	)
	switch {
	case errors.As(err, &authnErr):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Msg: authnErr.Msg})
	case errors.As(err, &authzErr):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Msg: authzErr.Msg})
	case errors.As(err, &badReqErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: badReqErr.Msg})
	case errors.As(err, &validErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: validErr.Error()})
	case errors.As(err, &duplicateErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: duplicateErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: notFoundErr.Error()})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Msg: fiberErr.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Something went wrong, please try again later"})
}
