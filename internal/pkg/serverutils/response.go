// FILE: internal/pkg/serverutils/response.go
package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"smepro-be/internal/dto"
)

// ApiResponse is the envelope every endpoint returns.
type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and normalizes failures into
// a ValidationError so the error handler maps them to 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			field := invalid[0]
			return &dto.ValidationError{
				Message: fmt.Sprintf("field %s failed validation on %s", field.Field(), field.Tag()),
			}
		}
		return &dto.ValidationError{Message: err.Error()}
	}
	return nil
}

// ErrorHandlerMiddleware maps typed service errors onto HTTP statuses.
// Anything unrecognized becomes a 500 without leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var limitErr *dto.LimitExceededError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ApiResponse[dto.LimitExceededData]{
				Success: false,
				Code:    fiber.StatusTooManyRequests,
				Message: limitErr.Error(),
				Data: dto.LimitExceededData{
					Quota:            limitErr.Quota,
					Limit:            limitErr.Limit,
					Used:             limitErr.Used,
					ShowModalPricing: true,
				},
			})
		}

		var notFoundErr *dto.NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, notFoundErr.Error()))
		}

		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
		}

		var gateErr *dto.FeatureGateError
		if errors.As(err, &gateErr) {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, gateErr.Error()))
		}

		var unauthorizedErr *dto.UnauthorizedError
		if errors.As(err, &unauthorizedErr) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, unauthorizedErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
