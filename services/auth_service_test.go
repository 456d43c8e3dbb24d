package services

import (
	"companion-lab/auth"
	"companion-lab/errors"
	"companion-lab/fixtures"
	"companion-lab/mocks"
	"companion-lab/repositories"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login(t *testing.T) {
	tokenizer := auth.NewTokenizer("test-secret", time.Hour)

	t.Run("should sign the default user in on first use", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		svc := NewAuthService(mockRepo, tokenizer, fixtures.LoginUser(), logs.GetLoggerFromLevel(slog.LevelDebug))

		mockRepo.EXPECT().Load().Return(repositories.User{}, errors.ErrUserNotFound)
		mockRepo.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(user repositories.User) error {
				req.Equal(fixtures.LoginUser(), user.Profile)
				req.False(user.SavedAt.IsZero())
				return nil
			})

		token, user, err := svc.Login()

		req.NoError(err)
		req.NotEmpty(token)
		req.Equal("u1", user.ID)
		claims, err := tokenizer.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("u1", claims.UserID)
	})

	t.Run("should restore the persisted user", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		svc := NewAuthService(mockRepo, tokenizer, fixtures.LoginUser(), logs.GetLoggerFromLevel(slog.LevelDebug))
		stored := verified(fixtures.LoginUser())

		mockRepo.EXPECT().Load().Return(repositories.User{Profile: stored}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).Times(0)

		_, user, err := svc.Login()

		req.NoError(err)
		req.True(user.PhoneVerified)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	tokenizer := auth.NewTokenizer("test-secret", time.Hour)
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, tokenizer, fixtures.LoginUser(), logs.GetLoggerFromLevel(slog.LevelDebug))
	token, err := tokenizer.GenerateToken("u1")
	require.NoError(t, err)

	t.Run("should resolve the signed in user", func(t *testing.T) {
		mockRepo.EXPECT().Load().Return(repositories.User{Profile: fixtures.LoginUser()}, nil)
		user, err := svc.Authenticate(token)
		require.NoError(t, err)
		require.Equal(t, "u1", user.ID)
	})

	t.Run("should refuse a token after logout", func(t *testing.T) {
		mockRepo.EXPECT().Load().Return(repositories.User{}, errors.ErrUserNotFound)
		_, err := svc.Authenticate(token)
		require.ErrorIs(t, err, errors.ErrInvalidToken)
	})

	t.Run("should refuse a forged token", func(t *testing.T) {
		mockRepo.EXPECT().Load().Times(0)
		_, err := svc.Authenticate("not.a.token")
		require.ErrorIs(t, err, errors.ErrInvalidToken)
	})
}

func TestAuthService_BindPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokenizer("s", time.Hour), fixtures.LoginUser(), logs.GetLoggerFromLevel(slog.LevelDebug))

	t.Run("should store the phone hash and verify the user", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Load().Return(repositories.User{Profile: fixtures.LoginUser()}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(user repositories.User) error {
				req.True(user.Profile.PhoneVerified)
				match, err := auth.ComparePhone("13800138000", user.PhoneHash)
				req.NoError(err)
				req.True(match)
				return nil
			})

		user, err := svc.BindPhone("13800138000")

		req.NoError(err)
		req.True(user.PhoneVerified)
	})

	t.Run("should accept a formatted number", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Load().Return(repositories.User{Profile: fixtures.LoginUser()}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(user repositories.User) error {
				match, err := auth.ComparePhone("13800138000", user.PhoneHash)
				req.NoError(err)
				req.True(match)
				return nil
			})

		_, err := svc.BindPhone("+86 138-0013-8000")

		req.NoError(err)
	})

	t.Run("should not rewrite the number already bound", func(t *testing.T) {
		req := require.New(t)
		hash, err := auth.HashPhone("13800138000")
		req.NoError(err)
		bound := verified(fixtures.LoginUser())
		mockRepo.EXPECT().Load().Return(repositories.User{Profile: bound, PhoneHash: hash}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).Times(0)

		user, err := svc.BindPhone("138 0013 8000")

		req.NoError(err)
		req.Equal(bound, user)
	})

	t.Run("should replace the hash when another number is bound", func(t *testing.T) {
		req := require.New(t)
		hash, err := auth.HashPhone("13900139000")
		req.NoError(err)
		mockRepo.EXPECT().Load().Return(repositories.User{Profile: verified(fixtures.LoginUser()), PhoneHash: hash}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(user repositories.User) error {
				req.NotEqual(hash, user.PhoneHash)
				match, err := auth.ComparePhone("13800138000", user.PhoneHash)
				req.NoError(err)
				req.True(match)
				return nil
			})

		_, err = svc.BindPhone("13800138000")

		req.NoError(err)
	})

	t.Run("should bind again over an unreadable hash", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Load().Return(repositories.User{Profile: verified(fixtures.LoginUser()), PhoneHash: "corrupted"}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).Return(nil)

		_, err := svc.BindPhone("13800138000")

		req.NoError(err)
	})

	t.Run("should refuse an invalid number", func(t *testing.T) {
		mockRepo.EXPECT().Load().Times(0)
		_, err := svc.BindPhone("12345")
		require.ErrorIs(t, err, errors.ErrInvalidPhone)
	})

	t.Run("should fail when nobody is signed in", func(t *testing.T) {
		mockRepo.EXPECT().Load().Return(repositories.User{}, errors.ErrUserNotFound)
		_, err := svc.BindPhone("13800138000")
		require.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokenizer("s", time.Hour), fixtures.LoginUser(), logs.GetLoggerFromLevel(slog.LevelDebug))
	mockRepo.EXPECT().Clear().Return(nil)

	require.NoError(t, svc.Logout())
}
