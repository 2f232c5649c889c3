package donation

import (
	"context"
	"errors"
	"fmt"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/utils/events"
	"foodbridge-backend/internal/utils/mailing"
	"foodbridge-backend/internal/utils/metrics"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, userID, restaurantID uint, req domain.CreateDonationRequest) ([]*entities.Donation, error)
		GetDonations(ctx context.Context, userID, restaurantID uint) ([]*entities.Donation, error)
	}

	donationService struct {
		donationRepository DonationRepository
		publisher          events.Publisher
		mailer             mailing.Mailer
	}
)

func NewDonationService(donationRepository DonationRepository, publisher events.Publisher, mailer mailing.Mailer) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		publisher:          publisher,
		mailer:             mailer,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, userID, restaurantID uint, req domain.CreateDonationRequest) ([]*entities.Donation, error) {
	restaurant, err := s.ownRestaurant(ctx, userID, restaurantID)
	if err != nil {
		return nil, err
	}

	donations, err := s.donationRepository.CreateDonations(ctx, req.RequestID, restaurantID, req.Products)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodRequestNotFound
		}
		return nil, err
	}
	metrics.DonationItems.Add(float64(len(donations)))

	s.notify(ctx, restaurant, req)
	return donations, nil
}

// notify runs after commit. Failures are logged only.
func (s *donationService) notify(ctx context.Context, restaurant *entities.Restaurant, req domain.CreateDonationRequest) {
	items := make([]events.DonatedItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, events.DonatedItem{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	if err := s.publisher.Publish(ctx, events.EventFoodRequestDonated,
		fmt.Sprintf("foodrequest:%d", req.RequestID),
		events.DonationPayload{FoodRequestID: req.RequestID, RestaurantID: restaurant.ID, Items: items},
	); err != nil {
		log.Errorw("failed to publish event", "event", events.EventFoodRequestDonated, "food_request_id", req.RequestID, "error", err)
	}

	request, owner, err := s.donationRepository.GetRequestOwner(ctx, req.RequestID)
	if err != nil {
		log.Errorw("failed to load request owner", "food_request_id", req.RequestID, "error", err)
		return
	}

	subject := fmt.Sprintf("New donation for %q", request.Title)
	body := fmt.Sprintf("<p>%s donated %d item(s) to your request <b>%s</b>.</p>", restaurant.Name, len(items), request.Title)
	if err := s.mailer.SendMail(owner.Email, subject, body); err != nil {
		log.Errorw("failed to send donation email", "food_request_id", req.RequestID, "error", err)
	}
}

func (s *donationService) GetDonations(ctx context.Context, userID, restaurantID uint) ([]*entities.Donation, error) {
	if _, err := s.ownRestaurant(ctx, userID, restaurantID); err != nil {
		return nil, err
	}

	donations, err := s.donationRepository.GetDonationsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []*entities.Donation{}
	}
	return donations, nil
}

func (s *donationService) ownRestaurant(ctx context.Context, userID, restaurantID uint) (*entities.Restaurant, error) {
	restaurant, err := s.donationRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	if restaurant.UserID != userID {
		return nil, domain.ErrRestaurantNotOwned
	}
	return restaurant, nil
}
