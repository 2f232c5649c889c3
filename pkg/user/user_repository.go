package user

import (
	"context"

	"foodbridge-backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		RegisterUser(ctx context.Context, user *entities.User, restaurant *entities.Restaurant, org *entities.OrgDetails) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		CheckEmailExists(ctx context.Context, email string) (bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// RegisterUser creates the user together with its role profile.
func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User, restaurant *entities.Restaurant, org *entities.OrgDetails) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Restaurant", "OrgDetails").Create(user).Error; err != nil {
			return err
		}
		if restaurant != nil {
			restaurant.UserID = user.ID
			if err := tx.Create(restaurant).Error; err != nil {
				return err
			}
			user.Restaurant = restaurant
		}
		if org != nil {
			org.UserID = user.ID
			if err := tx.Create(org).Error; err != nil {
				return err
			}
			user.OrgDetails = org
		}
		return nil
	})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("OrgDetails").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
