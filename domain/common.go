package domain

import (
	"errors"
)

const (
	RoleBuyer        = "buyer"
	RoleSeller       = "seller"
	RoleOrganization = "organization"
	RoleDelivery     = "delivery"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedParamRequest   = "invalid path parameter"
	MessageInternalServerError  = "internal server error"

	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrInvalidParam   = errors.New("invalid path parameter")
)

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalData  int64 `json:"total_data"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, limit int, total int64) PaginationResponse {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return PaginationResponse{Page: page, Limit: limit, TotalData: total, TotalPages: pages}
}
