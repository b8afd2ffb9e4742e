package auth

import (
	"context"
	"errors"
	"log"

	"estatien/internal/models"
	"estatien/internal/repositories"
	"estatien/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, userID uint) error
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
	GetUserTokenVersion(ctx context.Context, userID uint) (int, error)
}

type RegisterInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"fullName"`
	Phone    string      `json:"phone"`
	Role     models.Role `json:"role"`
}

type service struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewService(userRepo repositories.UserRepository, jwtSecret string) Service {
	if userRepo == nil {
		panic("user repository is required")
	}
	return &service{userRepo: userRepo, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Email == "" || input.FullName == "" {
		return nil, errors.New("email and full name are required")
	}
	if len(input.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() || role == models.RoleAdmin {
		return nil, errors.New("invalid role")
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.New("failed to create user")
	}
	return user, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("login failed: user not found for %s", email)
		return nil, "", "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: incorrect password for user %d", user.ID)
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := utils.GenerateTokens(s.jwtSecret, &models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		log.Println("error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(s.jwtSecret, refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}
	if user.TokenVersion != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}

	return utils.GenerateTokens(s.jwtSecret, &models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
}

func (s *service) Logout(ctx context.Context, userID uint) error {
	return s.userRepo.IncrementTokenVersion(ctx, userID)
}

func (s *service) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *service) GetUserTokenVersion(ctx context.Context, userID uint) (int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}
