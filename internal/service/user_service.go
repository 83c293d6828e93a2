package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/auth"
	"github.com/tdlam/formdesk/internal/dto"
	"github.com/tdlam/formdesk/internal/model"
	"github.com/tdlam/formdesk/internal/repository"
	"gorm.io/gorm"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// UserService implements the user account operations.
type UserService interface {
	Create(req dto.CreateUserRequest) (*dto.UserResponse, *apperr.Error)
	Get(req dto.GetUserRequest) (*dto.UserResponse, *apperr.Error)
	Update(req dto.UpdateUserRequest) (*dto.MessageResponse, *apperr.Error)
	Delete(req dto.DeleteUserRequest) (*dto.MessageResponse, *apperr.Error)
	List(req dto.ListUsersRequest) (*dto.UserListResponse, *apperr.Error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   auth.TokenService
}

func NewUserService(userRepo repository.UserRepository, tokens auth.TokenService) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) Create(req dto.CreateUserRequest) (*dto.UserResponse, *apperr.Error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, apperr.MissingFields("Email, password, and name are required")
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperr.New(apperr.CodeEmailTaken, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Email uniqueness check failed")
		return nil, apperr.Internal(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Password hashing failed")
		return nil, apperr.Internal(err)
	}

	user := model.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		return nil, apperr.Internal(err)
	}

	userDTO := dto.NewUserDTO(&user)
	return &dto.UserResponse{Envelope: dto.OK(), User: &userDTO}, nil
}

func (s *userService) Get(req dto.GetUserRequest) (*dto.UserResponse, *apperr.Error) {
	if req.UserID == "" || req.Token == "" {
		return nil, apperr.MissingFields("User ID and token are required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	userID, aerr := parseID(req.UserID, "User")
	if aerr != nil {
		return nil, aerr
	}

	// Users can only read their own record unless they are admin.
	if !auth.OwnerOrAdmin(caller, userID) {
		return nil, apperr.AccessDenied()
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, storeErr("User", err)
	}

	userDTO := dto.NewUserDTO(user)
	return &dto.UserResponse{Envelope: dto.OK(), User: &userDTO}, nil
}

func (s *userService) Update(req dto.UpdateUserRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.UserID == "" || req.Token == "" {
		return nil, apperr.MissingFields("User ID and token are required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	userID, aerr := parseID(req.UserID, "User")
	if aerr != nil {
		return nil, aerr
	}
	if !auth.OwnerOrAdmin(caller, userID) {
		return nil, apperr.AccessDenied()
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, storeErr("User", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, apperr.New(apperr.CodeEmailTaken, "Email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Email uniqueness check failed")
			return nil, apperr.Internal(err)
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			log.Error().Err(err).Msg("Password hashing failed")
			return nil, apperr.Internal(err)
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update user")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("User updated successfully")}, nil
}

func (s *userService) Delete(req dto.DeleteUserRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.UserID == "" || req.Token == "" {
		return nil, apperr.MissingFields("User ID and token are required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	userID, aerr := parseID(req.UserID, "User")
	if aerr != nil {
		return nil, aerr
	}
	if !auth.OwnerOrAdmin(caller, userID) {
		return nil, apperr.AccessDenied()
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, storeErr("User", err)
	}
	if err := s.userRepo.Delete(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to delete user")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("User deleted successfully")}, nil
}

// List is admin-only and paginated, ordered by creation time descending.
func (s *userService) List(req dto.ListUsersRequest) (*dto.UserListResponse, *apperr.Error) {
	if req.Token == "" {
		return nil, apperr.MissingFields("Token is required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}
	if !caller.IsAdmin() {
		return nil, apperr.AccessDenied()
	}

	page := defaultPage
	if req.Page != nil && *req.Page > 0 {
		page = *req.Page
	}
	pageSize := defaultPageSize
	if req.PageSize != nil && *req.PageSize > 0 {
		pageSize = *req.PageSize
	}

	users, err := s.userRepo.FindAll(page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, apperr.Internal(err)
	}

	dtos := make([]dto.UserDTO, len(users))
	for i := range users {
		dtos[i] = dto.NewUserDTO(&users[i])
	}
	return &dto.UserListResponse{Envelope: dto.OK(), Users: dtos, Page: page, PageSize: pageSize}, nil
}
