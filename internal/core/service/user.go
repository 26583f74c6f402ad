package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/MikeRez0/techxchange/internal/core/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewUserService(repo port.Repository, tokenService port.TokenService, logger *zap.Logger) (*UserService, error) {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

// RegisterUser stores a new buyer or seller account. Admin accounts are provisioned out of band.
func (s *UserService) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.FullName = strings.TrimSpace(user.FullName)

	switch user.Role {
	case "":
		user.Role = domain.RoleBuyer
	case domain.RoleBuyer, domain.RoleSeller:
	default:
		return nil, domain.NewValidationError("role", "Role must be buyer or seller")
	}

	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}
	user.Password = hashed
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *UserService) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error("Get user", zap.Error(err))
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return user, nil
}
