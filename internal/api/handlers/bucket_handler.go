package handlers

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/pkg/bucket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BucketHandler interface {
		GetFoodBucket(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
	}

	bucketHandler struct {
		bucketService bucket.BucketService
		validator     *validator.Validate
	}
)

func NewBucketHandler(bucketService bucket.BucketService, validator *validator.Validate) BucketHandler {
	return &bucketHandler{
		bucketService: bucketService,
		validator:     validator,
	}
}

func (h *bucketHandler) GetFoodBucket(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	res, err := h.bucketService.GetFoodBucket(c.Context(), userID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetFoodBucket, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodBucket)
}

func (h *bucketHandler) AddItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	req := new(domain.AddBucketItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBucketItem, err)
	}

	res, err := h.bucketService.AddItem(c.Context(), userID, *req)
	if err != nil {
		return handleError(c, domain.MessageFailedAddBucketItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddBucketItem)
}

func (h *bucketHandler) RemoveItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	res, err := h.bucketService.RemoveItem(c.Context(), userID, productID)
	if err != nil {
		return handleError(c, domain.MessageFailedRemoveItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveItem)
}
