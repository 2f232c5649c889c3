package handlers

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/presenters"
	"foodbridge-backend/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProductsByRestaurant(c *fiber.Ctx) error
		CreateProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		UploadProductImage(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) GetProductsByRestaurant(c *fiber.Ctx) error {
	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	products, err := h.productService.GetProductsByRestaurant(c.Context(), restaurantID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	req := new(domain.ProductInput)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.CreateProduct(c.Context(), userID, *req)
	if err != nil {
		return handleError(c, domain.MessageFailedCreateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	req := new(domain.ProductInput)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	res, err := h.productService.UpdateProduct(c.Context(), userID, productID, *req)
	if err != nil {
		return handleError(c, domain.MessageFailedUpdateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	if err := h.productService.DeleteProduct(c.Context(), userID, productID); err != nil {
		return handleError(c, domain.MessageFailedDeleteProduct, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) UploadProductImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParamRequest, err)
	}

	req := new(domain.ProductImageRequest)
	req.Image, _ = c.FormFile("image")
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadProductImage, domain.ErrImageRequired)
	}

	res, err := h.productService.UploadProductImage(c.Context(), userID, productID, req.Image)
	if err != nil {
		return handleError(c, domain.MessageFailedUploadProductImage, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadProductImage)
}
