package handlers

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	donations, err := h.donationService.CreateDonation(c.Context(), userID, restaurantID, *req)
	if err != nil {
		return handleError(c, domain.MessageFailedCreateDonation, err)
	}
	return presenters.SuccessResponse(c, donations, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	donations, err := h.donationService.GetDonations(c.Context(), userID, restaurantID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}
