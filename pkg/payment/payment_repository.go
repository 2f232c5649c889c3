package payment

import (
	"context"
	"errors"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// NotificationUpdate is what a gateway notification does to a payment.
	NotificationUpdate struct {
		EventKey      string
		OrderID       string
		PaymentStatus string
	}

	PaymentRepository interface {
		CreatePayment(ctx context.Context, payment *entities.Payment) error
		GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
		ApplyNotification(ctx context.Context, update NotificationUpdate) (*entities.Payment, bool, error)
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// CreatePayment stores the payment and moves the bucket out of the active state.
func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.FoodBucket{}).
			Where("id = ? AND status = ?", payment.FoodBucketID, entities.FoodBucketActive).
			Update("status", entities.FoodBucketPendingPayment)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFoodBucketNotFound
		}
		return tx.Create(payment).Error
	})
}

func (r *paymentRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ApplyNotification records the event key and applies the status change in
// one transaction. It returns false when the key was already recorded.
func (r *paymentRepository) ApplyNotification(ctx context.Context, update NotificationUpdate) (*entities.Payment, bool, error) {
	var payment entities.Payment
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.ProcessedEvent{EventKey: update.EventKey})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", update.OrderID).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPaymentNotFound
			}
			return err
		}
		applied = true
		bucketID := payment.FoodBucketID

		switch update.PaymentStatus {
		case entities.PaymentPaid:
			payment.Status = entities.PaymentPaid
			if err := tx.Model(&entities.FoodBucket{}).
				Where("id = ?", bucketID).
				Update("status", entities.FoodBucketPaid).Error; err != nil {
				return err
			}
		case entities.PaymentFailed:
			// a late failure never undoes a settled payment
			if payment.Status == entities.PaymentPaid {
				return nil
			}
			payment.Status = entities.PaymentFailed
			if err := r.reopenBucket(tx, bucketID, payment.UserID); err != nil {
				return err
			}
		default:
			return nil
		}

		return tx.Model(&entities.Payment{}).
			Where("id = ?", payment.ID).
			Update("status", payment.Status).Error
	})
	if err != nil {
		return nil, false, err
	}
	if !applied {
		return nil, false, nil
	}
	return &payment, true, nil
}

// reopenBucket makes the bucket active again unless the user already started
// a new one.
func (r *paymentRepository) reopenBucket(tx *gorm.DB, bucketID, userID uint) error {
	var active int64
	if err := tx.Model(&entities.FoodBucket{}).
		Where("user_id = ? AND status = ? AND id <> ?", userID, entities.FoodBucketActive, bucketID).
		Count(&active).Error; err != nil {
		return err
	}
	if active > 0 {
		return nil
	}
	return tx.Model(&entities.FoodBucket{}).
		Where("id = ? AND status = ?", bucketID, entities.FoodBucketPendingPayment).
		Update("status", entities.FoodBucketActive).Error
}
