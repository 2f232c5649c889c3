package donation

import (
	"context"
	"errors"
	"fmt"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DonationRepository interface {
		GetRestaurantByID(ctx context.Context, id uint) (*entities.Restaurant, error)
		CreateDonations(ctx context.Context, requestID, restaurantID uint, items []domain.DonationItemInput) ([]*entities.Donation, error)
		GetDonationsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Donation, error)
		GetRequestOwner(ctx context.Context, requestID uint) (*entities.FoodRequest, *entities.User, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) GetRestaurantByID(ctx context.Context, id uint) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// CreateDonations writes every item or none. The request row stays locked
// for the whole batch so a concurrent delete has to wait for it.
func (r *donationRepository) CreateDonations(ctx context.Context, requestID, restaurantID uint, items []domain.DonationItemInput) ([]*entities.Donation, error) {
	donations := make([]*entities.Donation, 0, len(items))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request entities.FoodRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", requestID).
			First(&request).Error; err != nil {
			return err
		}
		if request.Completed {
			return domain.ErrRequestCompleted
		}

		for _, item := range items {
			var product entities.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", item.ProductID).
				First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d", domain.ErrDonationProductNotFound, item.ProductID)
				}
				return err
			}
			if product.RestaurantID != restaurantID {
				return fmt.Errorf("%w: product %d", domain.ErrProductNotInRestaurant, item.ProductID)
			}

			res := tx.Model(&entities.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, item.ProductID)
			}

			donation := &entities.Donation{
				FoodRequestID: requestID,
				ProductID:     item.ProductID,
				RestaurantID:  restaurantID,
				Quantity:      item.Quantity,
			}
			if err := tx.Create(donation).Error; err != nil {
				return err
			}
			donations = append(donations, donation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("FoodRequest").
		Preload("Product").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc, id desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetRequestOwner(ctx context.Context, requestID uint) (*entities.FoodRequest, *entities.User, error) {
	var request entities.FoodRequest
	if err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&request).Error; err != nil {
		return nil, nil, err
	}

	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", request.OrgDetailsUserID).First(&user).Error; err != nil {
		return nil, nil, err
	}
	return &request, &user, nil
}
