package handlers

import (
	"errors"
	"strconv"

	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var (
	notFoundErrors = []error{
		domain.ErrFoodRequestNotFound,
		domain.ErrNoIncompleteRequests,
		domain.ErrOrgNotFound,
		domain.ErrRestaurantNotFound,
		domain.ErrUserNotFound,
		domain.ErrFoodBucketNotFound,
		domain.ErrBucketItemNotFound,
		domain.ErrProductNotFound,
		domain.ErrPaymentNotFound,
	}

	badRequestErrors = []error{
		domain.ErrRequestHasDonations,
		domain.ErrInsufficientStock,
		domain.ErrProductNotInRestaurant,
		domain.ErrDonationProductNotFound,
		domain.ErrRequestCompleted,
		domain.ErrEmptyFoodBucket,
		domain.ErrProductNotAvailable,
		domain.ErrInvalidSignature,
		domain.ErrEmailAlreadyUsed,
		domain.ErrInvalidCredentials,
		domain.ErrInvalidRole,
		domain.ErrUnauthorizedProductAccess,
		domain.ErrImageRequired,
		domain.ErrInvalidParam,
		storage.ErrFileTypeNotAllowed,
	}

	forbiddenErrors = []error{
		domain.ErrRestaurantNotOwned,
	}
)

func errorStatus(err error) int {
	if errors.Is(err, domain.ErrPaymentGateway) {
		return fiber.StatusBadGateway
	}
	for _, target := range forbiddenErrors {
		if errors.Is(err, target) {
			return fiber.StatusForbidden
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return fiber.StatusNotFound
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}

// handleError maps a service error to its HTTP class. Server and upstream
// errors are logged and hidden from the client.
func handleError(c *fiber.Ctx, message string, err error) error {
	status := errorStatus(err)
	switch status {
	case fiber.StatusInternalServerError:
		log.Errorw(message, "method", c.Method(), "path", c.Path(), "error", err)
		return presenters.ErrorResponse(c, status, message, errors.New(domain.MessageInternalServerError))
	case fiber.StatusBadGateway:
		log.Errorw(message, "method", c.Method(), "path", c.Path(), "error", err)
		return presenters.ErrorResponse(c, status, message, domain.ErrPaymentGateway)
	}
	return presenters.ErrorResponse(c, status, message, err)
}

func currentUserID(c *fiber.Ctx) (uint, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrTokenInvalid
	}
	return uint(id), nil
}

func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidParam
	}
	return uint(id), nil
}
