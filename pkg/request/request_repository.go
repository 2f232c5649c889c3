package request

import (
	"context"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RequestRepository interface {
		GetIncompleteByOrg(ctx context.Context, orgUserID uint) ([]*entities.FoodRequest, error)
		GetPublicRequests(ctx context.Context, page, limit int) ([]*entities.FoodRequest, int64, error)
		GetByID(ctx context.Context, id uint) (*entities.FoodRequest, error)
		OrgExists(ctx context.Context, orgUserID uint) (bool, error)
		Create(ctx context.Context, request *entities.FoodRequest) error
		Update(ctx context.Context, id uint, fields map[string]any) (int64, error)
		DeleteIfNoDonations(ctx context.Context, id uint) error
		ToggleVisibility(ctx context.Context, id uint) (int64, error)
		MarkComplete(ctx context.Context, id uint) (int64, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) withDonations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Donations", func(db *gorm.DB) *gorm.DB {
			return db.Order("donations.id asc")
		}).
		Preload("Donations.Product").
		Preload("Donations.Restaurant")
}

func (r *requestRepository) GetIncompleteByOrg(ctx context.Context, orgUserID uint) ([]*entities.FoodRequest, error) {
	var requests []*entities.FoodRequest
	if err := r.withDonations(ctx).
		Where("org_details_user_id = ? AND completed = ?", orgUserID, false).
		Order("date_time asc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetPublicRequests(ctx context.Context, page, limit int) ([]*entities.FoodRequest, int64, error) {
	var requests []*entities.FoodRequest
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Where("completed = ? AND visibility = ?", false, true).
		Session(&gorm.Session{})

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("OrgDetails").
		Order("date_time desc").
		Offset(offset).Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*entities.FoodRequest, error) {
	var request entities.FoodRequest
	if err := r.withDonations(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) OrgExists(ctx context.Context, orgUserID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.OrgDetails{}).
		Where("user_id = ?", orgUserID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *requestRepository) Create(ctx context.Context, request *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteIfNoDonations locks the request row so no donation can be attached
// between the count and the delete.
func (r *requestRepository) DeleteIfNoDonations(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request entities.FoodRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&request).Error; err != nil {
			return err
		}

		var donations int64
		if err := tx.Model(&entities.Donation{}).
			Where("food_request_id = ?", id).
			Count(&donations).Error; err != nil {
			return err
		}
		if donations > 0 {
			return domain.ErrRequestHasDonations
		}

		return tx.Delete(&request).Error
	})
}

func (r *requestRepository) ToggleVisibility(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Where("id = ?", id).
		Update("visibility", gorm.Expr("NOT visibility"))
	return res.RowsAffected, res.Error
}

func (r *requestRepository) MarkComplete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Where("id = ?", id).
		Update("completed", true)
	return res.RowsAffected, res.Error
}
