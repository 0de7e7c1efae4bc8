package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials возвращается при неверном email или пароле
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService интерфейс регистрации и аутентификации пользователей
type AuthService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (string, domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
}

type authService struct {
	repo      repository.UserRepository
	jwtSecret string
	log       *logger.Logger
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(repo repository.UserRepository, jwtSecret string, log *logger.Logger) AuthService {
	return &authService{
		repo:      repo,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	s.log.Debug("Registering user %s", req.Email)

	// bcrypt учитывает максимум 72 байта пароля
	password := []byte(req.Password)
	if len(password) > 72 {
		password = password[:72]
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Pincode:      req.Pincode,
		IsActive:     true,
	})
	if err != nil {
		return domain.User{}, err
	}

	s.log.Info("Registered user %d (%s)", user.ID, user.Email)
	return user, nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (string, domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Invalid password for user %s", req.Email)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Info("User %d logged in", user.ID)
	return token, user, nil
}

func (s *authService) generateToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	s.log.Debug("Getting user %d", id)
	return s.repo.GetByID(ctx, id)
}
