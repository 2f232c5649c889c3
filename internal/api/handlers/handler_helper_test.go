package handlers

import (
	"errors"
	"fmt"
	"testing"

	"foodbridge-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNoIncompleteRequests, fiber.StatusNotFound},
		{fmt.Errorf("complete food request 3: %w", domain.ErrFoodRequestNotFound), fiber.StatusNotFound},
		{domain.ErrRequestHasDonations, fiber.StatusBadRequest},
		{fmt.Errorf("product 9: %w", domain.ErrInsufficientStock), fiber.StatusBadRequest},
		{domain.ErrInvalidSignature, fiber.StatusBadRequest},
		{domain.ErrRestaurantNotOwned, fiber.StatusForbidden},
		{fmt.Errorf("%w: Access denied", domain.ErrPaymentGateway), fiber.StatusBadGateway},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, errorStatus(tc.err), tc.err.Error())
	}
}
