package bucket

import (
	"context"

	"foodbridge-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	BucketRepository interface {
		GetActiveBucket(ctx context.Context, userID uint) (*entities.FoodBucket, error)
		GetOrCreateActiveBucket(ctx context.Context, userID uint) (*entities.FoodBucket, error)
		GetProductByID(ctx context.Context, productID uint) (*entities.Product, error)
		UpsertItem(ctx context.Context, item *entities.FoodBucketItem) error
		RemoveItem(ctx context.Context, bucketID, productID uint) (int64, error)
	}

	bucketRepository struct {
		db *gorm.DB
	}
)

func NewBucketRepository(db *gorm.DB) BucketRepository {
	return &bucketRepository{db: db}
}

func (r *bucketRepository) GetActiveBucket(ctx context.Context, userID uint) (*entities.FoodBucket, error) {
	var bucket entities.FoodBucket
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("food_bucket_items.id asc")
		}).
		Preload("Items.Product").
		Where("user_id = ? AND status = ?", userID, entities.FoodBucketActive).
		First(&bucket).Error; err != nil {
		return nil, err
	}
	return &bucket, nil
}

func (r *bucketRepository) GetOrCreateActiveBucket(ctx context.Context, userID uint) (*entities.FoodBucket, error) {
	bucket := entities.FoodBucket{UserID: userID, Status: entities.FoodBucketActive}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entities.FoodBucketActive).
		FirstOrCreate(&bucket).Error; err != nil {
		return nil, err
	}
	return &bucket, nil
}

func (r *bucketRepository) GetProductByID(ctx context.Context, productID uint) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", productID).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpsertItem sets the quantity of a product in the bucket.
func (r *bucketRepository) UpsertItem(ctx context.Context, item *entities.FoodBucketItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "food_bucket_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(item).Error
}

func (r *bucketRepository) RemoveItem(ctx context.Context, bucketID, productID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("food_bucket_id = ? AND product_id = ?", bucketID, productID).
		Delete(&entities.FoodBucketItem{})
	return res.RowsAffected, res.Error
}
