package domain

import (
	"errors"
	"time"
)

// VisibilityPublic is the only visibility literal that makes a request public.
const VisibilityPublic = "Public"

var (
	MessageSuccessGetFoodRequests     = "food requests retrieved successfully"
	MessageSuccessGetFoodRequest      = "food request retrieved successfully"
	MessageSuccessCreateFoodRequest   = "food request created successfully"
	MessageSuccessUpdateFoodRequest   = "food request updated successfully"
	MessageSuccessDeleteFoodRequest   = "food request deleted successfully"
	MessageSuccessToggleVisibility    = "food request visibility updated"
	MessageSuccessCompleteFoodRequest = "food request marked as completed"

	MessageFailedGetFoodRequests     = "failed to retrieve food requests"
	MessageFailedGetFoodRequest      = "failed to retrieve food request"
	MessageFailedCreateFoodRequest   = "failed to create food request"
	MessageFailedUpdateFoodRequest   = "failed to update food request"
	MessageFailedDeleteFoodRequest   = "failed to delete food request"
	MessageFailedToggleVisibility    = "failed to update food request visibility"
	MessageFailedCompleteFoodRequest = "failed to mark food request as completed"

	ErrFoodRequestNotFound  = errors.New("food request not found")
	ErrNoIncompleteRequests = errors.New("no incomplete food requests found")
	ErrOrgNotFound          = errors.New("organization not found")
	ErrRequestHasDonations  = errors.New("food request has donations, mark it completed instead")
)

type (
	// FoodRequestInput is used for both create and full update.
	FoodRequestInput struct {
		Title      string    `json:"title" validate:"required"`
		Products   string    `json:"products" validate:"required"`
		Quantity   int       `json:"quantity" validate:"required,gt=0"`
		DateTime   time.Time `json:"dateTime" validate:"required"`
		Notes      string    `json:"notes"`
		Urgent     bool      `json:"urgent"`
		Delivery   bool      `json:"delivery"`
		Visibility string    `json:"visibility"`
	}

	PublicFoodRequestQuery struct {
		Page  int `query:"page" validate:"gte=1"`
		Limit int `query:"limit" validate:"gte=1,lte=100"`
	}
)

func (in FoodRequestInput) IsPublic() bool {
	return in.Visibility == VisibilityPublic
}
