package product

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		GetProductsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Product, error)
		CreateProduct(ctx context.Context, userID uint, req domain.ProductInput) (*entities.Product, error)
		UpdateProduct(ctx context.Context, userID, productID uint, req domain.ProductInput) (*entities.Product, error)
		DeleteProduct(ctx context.Context, userID, productID uint) error
		UploadProductImage(ctx context.Context, userID, productID uint, image *multipart.FileHeader) (*entities.Product, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) GetProductsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Product, error) {
	exists, err := s.productRepository.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrRestaurantNotFound
	}

	products, err := s.productRepository.GetProductsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*entities.Product{}
	}
	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, userID uint, req domain.ProductInput) (*entities.Product, error) {
	restaurant, err := s.ownRestaurant(ctx, userID)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Quantity:     req.Quantity,
		Available:    req.Available == nil || *req.Available,
	}
	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, userID, productID uint, req domain.ProductInput) (*entities.Product, error) {
	product, err := s.ownProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Quantity = req.Quantity
	if req.Available != nil {
		product.Available = *req.Available
	}

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("update product %d: %w", productID, err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, userID, productID uint) error {
	product, err := s.ownProduct(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := s.productRepository.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("delete product %d: %w", productID, err)
	}

	if product.ImageURL != "" {
		if key := s.s3.GetObjectKeyFromLink(product.ImageURL); key != "" {
			if err := s.s3.DeleteFile(key); err != nil {
				log.Errorw("failed to delete product image", "product_id", productID, "error", err)
			}
		}
	}
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, userID, productID uint, image *multipart.FileHeader) (*entities.Product, error) {
	if image == nil {
		return nil, domain.ErrImageRequired
	}

	product, err := s.ownProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("product-%d", product.ID)
	var objectKey string
	var uploadErr error

	existingKey := ""
	if product.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(product.ImageURL)
	}
	if existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "products", storage.AllowImage...)
	}
	if uploadErr != nil {
		return nil, uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("save product image: %w", err)
	}
	return product, nil
}

func (s *productService) ownRestaurant(ctx context.Context, userID uint) (*entities.Restaurant, error) {
	restaurant, err := s.productRepository.GetRestaurantByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *productService) ownProduct(ctx context.Context, userID, productID uint) (*entities.Product, error) {
	restaurant, err := s.ownRestaurant(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if product.RestaurantID != restaurant.ID {
		return nil, domain.ErrUnauthorizedProductAccess
	}
	return product, nil
}
