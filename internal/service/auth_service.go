package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"
)

// AuthClaims is the JWT payload issued to authenticated users.
type AuthClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthResult bundles a signed token with the authenticated user.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Profile is the authenticated user's account view.
type Profile struct {
	User      *domain.User
	QuizCount int
}

// AuthService handles registration, credential login and token validation.
type AuthService interface {
	Register(ctx context.Context, username, email, password, fullName string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	ValidateToken(tokenString string) (*AuthClaims, error)
}

type authService struct {
	userRepo repository.UserRepository
	quizRepo repository.QuizRepository
	cfg      config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, quizRepo repository.QuizRepository, cfg config.JWTConfig) AuthService {
	return &authService{userRepo: userRepo, quizRepo: quizRepo, cfg: cfg}
}

// Register creates an account and returns a fresh token. Email addresses and
// usernames are unique.
func (s *authService) Register(ctx context.Context, username, email, password, fullName string) (*AuthResult, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to check existing email", err)
	}
	if existing != nil {
		return nil, domain.NewInvalidInputError("Email already in use")
	}

	existing, err = s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewInternalError("failed to check existing username", err)
	}
	if existing != nil {
		return nil, domain.NewInvalidInputError("Username already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := s.userRepo.CreateUser(ctx, models.UserFromDomain(user)); err != nil {
		return nil, domain.NewInternalError("failed to create user", err)
	}

	token, err := s.createToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies the credentials. Unknown email and wrong password produce
// the same error, so the response does not reveal which one failed.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	model, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if model == nil {
		return nil, domain.NewUnauthorizedError("Invalid email or password")
	}
	user := model.ToDomain()

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.createToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	model, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if model == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	quizzes, err := s.quizRepo.ListQuizzesByOwner(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to count quizzes", err)
	}

	return &Profile{User: model.ToDomain(), QuizCount: len(quizzes)}, nil
}

func (s *authService) createToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", domain.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token, accepting HS256 only.
func (s *authService) ValidateToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.NewUnauthorizedError("Invalid or expired token")
	}
	return claims, nil
}
