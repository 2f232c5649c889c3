package payment

import (
	"context"
	"errors"
	"strconv"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/utils/cache"
	"foodbridge-backend/internal/utils/events"
	"foodbridge-backend/internal/utils/metrics"
	"foodbridge-backend/pkg/bucket"
	"foodbridge-backend/pkg/midtrans"
	"foodbridge-backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreatePaymentIntent(ctx context.Context, userID uint) (*domain.PaymentIntentResponse, error)
		HandleNotification(ctx context.Context, n domain.MidtransNotification) (bool, error)
	}

	paymentService struct {
		paymentRepository PaymentRepository
		bucketRepository  bucket.BucketRepository
		userRepository    user.UserRepository
		gateway           midtrans.PaymentGateway
		deduper           cache.Deduper
		publisher         events.Publisher
	}
)

func NewPaymentService(
	paymentRepository PaymentRepository,
	bucketRepository bucket.BucketRepository,
	userRepository user.UserRepository,
	gateway midtrans.PaymentGateway,
	deduper cache.Deduper,
	publisher events.Publisher,
) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		bucketRepository:  bucketRepository,
		userRepository:    userRepository,
		gateway:           gateway,
		deduper:           deduper,
		publisher:         publisher,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, userID uint) (*domain.PaymentIntentResponse, error) {
	foodBucket, err := s.bucketRepository.GetActiveBucket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodBucketNotFound
		}
		return nil, err
	}

	amount := bucket.Total(foodBucket)
	if len(foodBucket.Items) == 0 || amount <= 0 {
		return nil, domain.ErrEmptyFoodBucket
	}

	buyer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	items := make([]midtrans.ChargeItem, 0, len(foodBucket.Items))
	for _, item := range foodBucket.Items {
		if item.Product == nil {
			continue
		}
		items = append(items, midtrans.ChargeItem{
			ID:       strconv.FormatUint(uint64(item.ProductID), 10),
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
		})
	}

	orderID := "FB-" + uuid.NewString()
	charge, err := s.gateway.CreateTransaction(ctx, midtrans.ChargeRequest{
		OrderID:       orderID,
		BucketID:      foodBucket.ID,
		UserID:        userID,
		CustomerName:  buyer.Name,
		CustomerEmail: buyer.Email,
		Items:         items,
	})
	if err != nil {
		return nil, err
	}

	payment := &entities.Payment{
		OrderID:      orderID,
		FoodBucketID: foodBucket.ID,
		UserID:       userID,
		Amount:       amount,
		Status:       entities.PaymentPending,
		SnapToken:    charge.Token,
	}
	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return &domain.PaymentIntentResponse{
		OrderID:      orderID,
		ClientSecret: charge.Token,
		RedirectURL:  charge.RedirectURL,
		Amount:       amount,
	}, nil
}

// HandleNotification returns true when the notification was a replay.
func (s *paymentService) HandleNotification(ctx context.Context, n domain.MidtransNotification) (bool, error) {
	if !s.gateway.VerifySignature(n) {
		metrics.PaymentNotifications.WithLabelValues("invalid_signature").Inc()
		return false, domain.ErrInvalidSignature
	}

	eventID := n.TransactionID
	if eventID == "" {
		eventID = n.OrderID
	}
	eventKey := eventID + ":" + n.TransactionStatus

	seen, err := s.deduper.Seen(ctx, cache.ServicePaymentWebhook, eventKey)
	if err != nil {
		log.Warnw("dedup lookup failed, falling back to ledger", "event_key", eventKey, "error", err)
	}
	if seen {
		metrics.PaymentNotifications.WithLabelValues("duplicate").Inc()
		return true, nil
	}

	status := ""
	switch {
	case midtrans.IsSuccess(n.TransactionStatus, n.FraudStatus):
		status = entities.PaymentPaid
	case midtrans.IsFailure(n.TransactionStatus):
		status = entities.PaymentFailed
	}

	// custom_field1 is not signed, the stored payment decides the bucket
	known, err := s.paymentRepository.GetPaymentByOrderID(ctx, n.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrPaymentNotFound
		}
		return false, err
	}
	if claimed := n.CustomField1; claimed != "" && claimed != strconv.FormatUint(uint64(known.FoodBucketID), 10) {
		log.Warnw("notification bucket does not match payment",
			"order_id", n.OrderID, "custom_field1", claimed, "food_bucket_id", known.FoodBucketID)
	}

	payment, applied, err := s.paymentRepository.ApplyNotification(ctx, NotificationUpdate{
		EventKey:      eventKey,
		OrderID:       n.OrderID,
		PaymentStatus: status,
	})
	if err != nil {
		return false, err
	}

	if err := s.deduper.Mark(ctx, cache.ServicePaymentWebhook, eventKey); err != nil {
		log.Warnw("failed to mark notification", "event_key", eventKey, "error", err)
	}

	if !applied {
		metrics.PaymentNotifications.WithLabelValues("duplicate").Inc()
		return true, nil
	}
	metrics.PaymentNotifications.WithLabelValues(outcome(status)).Inc()

	if status != "" && payment.Status == status {
		s.publish(ctx, payment, status)
	}
	return false, nil
}

func (s *paymentService) publish(ctx context.Context, payment *entities.Payment, status string) {
	eventType := events.EventPaymentPaid
	if status == entities.PaymentFailed {
		eventType = events.EventPaymentFailed
	}

	if err := s.publisher.Publish(ctx, eventType, payment.OrderID, events.PaymentPayload{
		OrderID:      payment.OrderID,
		FoodBucketID: payment.FoodBucketID,
		UserID:       payment.UserID,
		Amount:       payment.Amount,
		Status:       payment.Status,
	}); err != nil {
		log.Errorw("failed to publish event", "event", eventType, "order_id", payment.OrderID, "error", err)
	}
}

func outcome(status string) string {
	if status == "" {
		return "ignored"
	}
	return status
}

