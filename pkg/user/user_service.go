package user

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (*domain.UserLoginResponse, error)
		Me(ctx context.Context, userID uint) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (*domain.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyUsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrHashPassword
	}

	user := &entities.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     req.Role,
	}

	var restaurant *entities.Restaurant
	var org *entities.OrgDetails
	switch req.Role {
	case domain.RoleSeller:
		restaurant = &entities.Restaurant{
			Name:        req.ProfileName,
			Address:     req.Address,
			Phone:       req.Phone,
			Description: req.Description,
		}
	case domain.RoleOrganization:
		org = &entities.OrgDetails{
			Name:    req.ProfileName,
			Address: req.Address,
			Phone:   req.Phone,
		}
	case domain.RoleBuyer, domain.RoleDelivery:
	default:
		return nil, domain.ErrInvalidRole
	}

	if err := s.userRepository.RegisterUser(ctx, user, restaurant, org); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (*domain.UserLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), user.Role)
	return &domain.UserLoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	res := &domain.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.Restaurant != nil {
		id := user.Restaurant.ID
		res.RestaurantID = &id
	}
	if user.OrgDetails != nil {
		res.OrgName = user.OrgDetails.Name
	}
	return res
}
