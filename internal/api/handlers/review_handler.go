package handlers

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		UpsertReview(c *fiber.Ctx) error
		GetReviews(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) UpsertReview(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}
	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	req := new(domain.ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertReview, err)
	}

	res, err := h.reviewService.UpsertReview(c.Context(), userID, restaurantID, *req)
	if err != nil {
		return handleError(c, domain.MessageFailedUpsertReview, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpsertReview)
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	res, err := h.reviewService.GetRestaurantReviews(c.Context(), restaurantID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetReviews, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}
