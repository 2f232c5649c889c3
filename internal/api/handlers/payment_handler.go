package handlers

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreatePaymentIntent(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	res, err := h.paymentService.CreatePaymentIntent(c.Context(), userID)
	if err != nil {
		return handleError(c, domain.MessageFailedCreatePaymentIntent, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePaymentIntent)
}

func (h *paymentHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransNotification)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	duplicate, err := h.paymentService.HandleNotification(c.Context(), *req)
	if err != nil {
		return handleError(c, domain.MessageFailedWebhook, err)
	}
	if duplicate {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhookDuplicate)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
