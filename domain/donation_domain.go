package domain

import "errors"

var (
	MessageSuccessCreateDonation = "donation created successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"

	MessageFailedCreateDonation = "failed to create donation"
	MessageFailedGetDonations   = "failed to retrieve donations"

	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrRestaurantNotOwned      = errors.New("restaurant does not belong to this seller")
	ErrDonationProductNotFound = errors.New("donated product not found")
	ErrProductNotInRestaurant  = errors.New("product does not belong to restaurant")
	ErrInsufficientStock       = errors.New("insufficient product stock")
	ErrRequestCompleted        = errors.New("food request is already completed")
)

type (
	DonationItemInput struct {
		ProductID uint `json:"productId" validate:"required"`
		Quantity  int  `json:"quantity" validate:"required,gt=0"`
	}

	CreateDonationRequest struct {
		RequestID uint                `json:"requestId" validate:"required"`
		Products  []DonationItemInput `json:"products" validate:"required,min=1,dive"`
	}
)
