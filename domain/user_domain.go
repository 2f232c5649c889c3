package domain

import "errors"

var (
	MessageSuccessRegister = "register success"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetUser  = "user retrieved successfully"

	MessageFailedRegister = "failed to register"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetUser  = "failed to retrieve user"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	UserRegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"required,oneof=buyer seller organization delivery"`

		// restaurant or organization profile
		ProfileName string `json:"profile_name" validate:"required_if=Role seller,required_if=Role organization"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		Description string `json:"description"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID           uint   `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		RestaurantID *uint  `json:"restaurant_id,omitempty"`
		OrgName      string `json:"org_name,omitempty"`
	}
)
