package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	repository "excursion-booking/internal/database/jsonfile"
	"excursion-booking/internal/entity"
)

const minPasswordLength = 6

// RegisterRequest carries the registration form fields. Phone is optional,
// everything else is required.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*entity.Principal, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || req.Password == "" || req.Confirm == "" {
		return nil, fmt.Errorf("%w: fill in all required fields", entity.ErrValidation)
	}
	if req.Password != req.Confirm {
		return nil, fmt.Errorf("%w: passwords do not match", entity.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entity.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		CreatedAt:    entity.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logrus.Infof("user registered: id=%d email=%s", user.ID, user.Email)

	return &entity.Principal{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

// Login deliberately returns the same generic error for an unknown email
// and a wrong password, so accounts cannot be enumerated.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*entity.Principal, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == entity.ErrUserNotFound {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, entity.ErrInvalidCredentials
	}

	logrus.Infof("user logged in: id=%d", user.ID)

	return &entity.Principal{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
