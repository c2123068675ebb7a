package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/repository/models"
)

func newAuthServiceForTest(t *testing.T) (*MockUserRepository, *MockQuizRepository, AuthService) {
	t.Helper()
	userRepo := new(MockUserRepository)
	quizRepo := new(MockQuizRepository)
	svc := NewAuthService(userRepo, quizRepo, config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: time.Hour,
	})
	return userRepo, quizRepo, svc
}

func TestAuthService_Register(t *testing.T) {
	userRepo, _, svc := newAuthServiceForTest(t)

	userRepo.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	userRepo.On("GetUserByUsername", mock.Anything, "newbie").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash != "secret123"
	})).Return(nil)

	result, err := svc.Register(context.Background(), "newbie", "new@example.com", "secret123", "New Bie")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.User.ID)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "newbie", claims.Username)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo, _, svc := newAuthServiceForTest(t)

	existing := models.UserFromDomain(&domain.User{ID: "01HUSER", Email: "taken@example.com"})
	userRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), "someone", "taken@example.com", "secret123", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already in use")
}

func TestAuthService_Login(t *testing.T) {
	userRepo, _, svc := newAuthServiceForTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.UserFromDomain(&domain.User{
		ID:           "01HUSER",
		Username:     "gopher",
		Email:        "gopher@example.com",
		PasswordHash: string(hash),
	})
	userRepo.On("GetUserByEmail", mock.Anything, "gopher@example.com").Return(stored, nil)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "gopher@example.com", "correct horse")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "01HUSER", result.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "gopher@example.com", "battery staple")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo, _, svc := newAuthServiceForTest(t)
	userRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestAuthService_GetProfile(t *testing.T) {
	userRepo, quizRepo, svc := newAuthServiceForTest(t)

	stored := models.UserFromDomain(&domain.User{ID: "01HUSER", Username: "gopher", Email: "g@example.com"})
	userRepo.On("GetUserByID", mock.Anything, "01HUSER").Return(stored, nil)
	quizRepo.On("ListQuizzesByOwner", mock.Anything, "01HUSER").Return([]models.Quiz{
		*models.QuizFromDomain(&domain.Quiz{ID: "01HQ1", OwnerID: "01HUSER"}),
	}, nil)

	profile, err := svc.GetProfile(context.Background(), "01HUSER")
	require.NoError(t, err)
	assert.Equal(t, "gopher", profile.User.Username)
	assert.Equal(t, 1, profile.QuizCount)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	_, _, svc := newAuthServiceForTest(t)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)

	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeUnauthorized, de.Code)
}
