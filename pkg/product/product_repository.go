package product

import (
	"context"

	"foodbridge-backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetRestaurantByUserID(ctx context.Context, userID uint) (*entities.Restaurant, error)
		RestaurantExists(ctx context.Context, restaurantID uint) (bool, error)
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id uint) (*entities.Product, error)
		GetProductsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id uint) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetRestaurantByUserID(ctx context.Context, userID uint) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *productRepository) RestaurantExists(ctx context.Context, restaurantID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id uint) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteProduct also drops the product from every food bucket.
func (r *productRepository) DeleteProduct(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&entities.FoodBucketItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Product{}).Error
	})
}
