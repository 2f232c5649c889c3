package handlers

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		GetIncompleteRequests(c *fiber.Ctx) error
		GetPublicRequests(c *fiber.Ctx) error
		GetRequest(c *fiber.Ctx) error
		CreateRequest(c *fiber.Ctx) error
		UpdateRequest(c *fiber.Ctx) error
		DeleteRequest(c *fiber.Ctx) error
		ToggleVisibility(c *fiber.Ctx) error
		CompleteRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) GetIncompleteRequests(c *fiber.Ctx) error {
	orgUserID, err := paramID(c, "orgUserId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	requests, err := h.requestService.GetIncompleteRequests(c.Context(), orgUserID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetFoodRequests, err)
	}
	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetFoodRequests)
}

func (h *requestHandler) GetPublicRequests(c *fiber.Ctx) error {
	query := domain.PublicFoodRequestQuery{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodRequests, err)
	}

	requests, pagination, err := h.requestService.GetPublicRequests(c.Context(), query.Page, query.Limit)
	if err != nil {
		return handleError(c, domain.MessageFailedGetFoodRequests, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"requests":   requests,
		"pagination": pagination,
	}, fiber.StatusOK, domain.MessageSuccessGetFoodRequests)
}

func (h *requestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := paramID(c, "requestId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	res, err := h.requestService.GetRequest(c.Context(), id)
	if err != nil {
		return handleError(c, domain.MessageFailedGetFoodRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodRequest)
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	orgUserID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	req := new(domain.FoodRequestInput)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodRequest, err)
	}

	res, err := h.requestService.CreateRequest(c.Context(), *req, orgUserID)
	if err != nil {
		return handleError(c, domain.MessageFailedCreateFoodRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodRequest)
}

// UpdateRequest replaces every mutable field, so the body must be a complete
// valid request.
func (h *requestHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := paramID(c, "requestId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	req := new(domain.FoodRequestInput)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodRequest, err)
	}

	res, err := h.requestService.UpdateRequest(c.Context(), id, *req)
	if err != nil {
		return handleError(c, domain.MessageFailedUpdateFoodRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodRequest)
}

func (h *requestHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := paramID(c, "requestId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	if err := h.requestService.DeleteRequest(c.Context(), id); err != nil {
		return handleError(c, domain.MessageFailedDeleteFoodRequest, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodRequest)
}

func (h *requestHandler) ToggleVisibility(c *fiber.Ctx) error {
	id, err := paramID(c, "requestId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	res, err := h.requestService.ToggleVisibility(c.Context(), id)
	if err != nil {
		return handleError(c, domain.MessageFailedToggleVisibility, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleVisibility)
}

func (h *requestHandler) CompleteRequest(c *fiber.Ctx) error {
	id, err := paramID(c, "requestId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	res, err := h.requestService.CompleteRequest(c.Context(), id)
	if err != nil {
		return handleError(c, domain.MessageFailedCompleteFoodRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteFoodRequest)
}
