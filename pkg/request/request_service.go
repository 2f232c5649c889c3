package request

import (
	"context"
	"errors"
	"fmt"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/utils/events"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		GetIncompleteRequests(ctx context.Context, orgUserID uint) ([]*entities.FoodRequest, error)
		GetPublicRequests(ctx context.Context, page, limit int) ([]*entities.FoodRequest, domain.PaginationResponse, error)
		GetRequest(ctx context.Context, id uint) (*entities.FoodRequest, error)
		CreateRequest(ctx context.Context, req domain.FoodRequestInput, orgUserID uint) (*entities.FoodRequest, error)
		UpdateRequest(ctx context.Context, id uint, req domain.FoodRequestInput) (*entities.FoodRequest, error)
		DeleteRequest(ctx context.Context, id uint) error
		ToggleVisibility(ctx context.Context, id uint) (*entities.FoodRequest, error)
		CompleteRequest(ctx context.Context, id uint) (*entities.FoodRequest, error)
	}

	requestService struct {
		requestRepository RequestRepository
		publisher         events.Publisher
	}
)

func NewRequestService(requestRepository RequestRepository, publisher events.Publisher) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		publisher:         publisher,
	}
}

func (s *requestService) GetIncompleteRequests(ctx context.Context, orgUserID uint) ([]*entities.FoodRequest, error) {
	requests, err := s.requestRepository.GetIncompleteByOrg(ctx, orgUserID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, domain.ErrNoIncompleteRequests
	}
	return requests, nil
}

func (s *requestService) GetPublicRequests(ctx context.Context, page, limit int) ([]*entities.FoodRequest, domain.PaginationResponse, error) {
	requests, count, err := s.requestRepository.GetPublicRequests(ctx, page, limit)
	if err != nil {
		return nil, domain.PaginationResponse{}, err
	}
	if requests == nil {
		requests = []*entities.FoodRequest{}
	}
	return requests, domain.NewPagination(page, limit, count), nil
}

func (s *requestService) GetRequest(ctx context.Context, id uint) (*entities.FoodRequest, error) {
	request, err := s.requestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.FoodRequestInput, orgUserID uint) (*entities.FoodRequest, error) {
	exists, err := s.requestRepository.OrgExists(ctx, orgUserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrOrgNotFound
	}

	request := &entities.FoodRequest{
		OrgDetailsUserID: orgUserID,
		Title:            req.Title,
		Products:         req.Products,
		Quantity:         req.Quantity,
		DateTime:         req.DateTime,
		Notes:            req.Notes,
		Urgent:           req.Urgent,
		Delivery:         req.Delivery,
		Visibility:       req.IsPublic(),
		Completed:        false,
	}

	if err := s.requestRepository.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create food request: %w", err)
	}
	request.Donations = []*entities.Donation{}
	return request, nil
}

// UpdateRequest overwrites every mutable field, optional ones missing from the
// input are written as their zero value.
func (s *requestService) UpdateRequest(ctx context.Context, id uint, req domain.FoodRequestInput) (*entities.FoodRequest, error) {
	rows, err := s.requestRepository.Update(ctx, id, map[string]any{
		"title":      req.Title,
		"products":   req.Products,
		"quantity":   req.Quantity,
		"date_time":  req.DateTime,
		"notes":      req.Notes,
		"urgent":     req.Urgent,
		"delivery":   req.Delivery,
		"visibility": req.IsPublic(),
	})
	if err != nil {
		return nil, fmt.Errorf("update food request %d: %w", id, err)
	}
	if rows == 0 {
		return nil, domain.ErrFoodRequestNotFound
	}
	return s.GetRequest(ctx, id)
}

func (s *requestService) DeleteRequest(ctx context.Context, id uint) error {
	err := s.requestRepository.DeleteIfNoDonations(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrFoodRequestNotFound
	}
	return err
}

func (s *requestService) ToggleVisibility(ctx context.Context, id uint) (*entities.FoodRequest, error) {
	rows, err := s.requestRepository.ToggleVisibility(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle visibility of food request %d: %w", id, err)
	}
	if rows == 0 {
		return nil, domain.ErrFoodRequestNotFound
	}
	return s.GetRequest(ctx, id)
}

func (s *requestService) CompleteRequest(ctx context.Context, id uint) (*entities.FoodRequest, error) {
	rows, err := s.requestRepository.MarkComplete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complete food request %d: %w", id, err)
	}
	if rows == 0 {
		return nil, domain.ErrFoodRequestNotFound
	}

	if err := s.publisher.Publish(ctx, events.EventFoodRequestCompleted,
		fmt.Sprintf("foodrequest:%d", id),
		events.FoodRequestCompletedPayload{FoodRequestID: id},
	); err != nil {
		log.Errorw("failed to publish event", "event", events.EventFoodRequestCompleted, "food_request_id", id, "error", err)
	}

	return s.GetRequest(ctx, id)
}
