package services

import (
	"companion-lab/auth"
	"companion-lab/domain"
	"companion-lab/errors"
	"companion-lab/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"
)

type IAuthService interface {
	Login() (Token, domain.UserProfile, error)
	Logout() error
	Current() (domain.UserProfile, error)
	Authenticate(token string) (domain.UserProfile, error)
	BindPhone(phone string) (domain.UserProfile, error)
}

type Token string

// AuthService manages the single account signed in on the device.
type AuthService struct {
	userRepository repositories.IUserRepository
	tokenizer      auth.Tokenizer
	loginUser      domain.UserProfile
	log            *slog.Logger
}

func NewAuthService(repo repositories.IUserRepository, tokenizer auth.Tokenizer, loginUser domain.UserProfile, log *slog.Logger) *AuthService {
	return &AuthService{userRepository: repo, tokenizer: tokenizer, loginUser: loginUser, log: log}
}

// Login restores the persisted account, or signs the default user in on first
// use, and issues a session token.
func (s *AuthService) Login() (Token, domain.UserProfile, error) {
	user, err := s.userRepository.Load()
	if stderrors.Is(err, errors.ErrUserNotFound) {
		user = repositories.User{Profile: s.loginUser, SavedAt: time.Now().UTC()}
		if err = s.userRepository.Save(user); err != nil {
			return "", domain.UserProfile{}, err
		}
		s.log.Info("User signed in for the first time", "user", user.Profile.ID)
	} else if err != nil {
		return "", domain.UserProfile{}, err
	}

	token, err := s.tokenizer.GenerateToken(user.Profile.ID)
	if err != nil {
		return "", domain.UserProfile{}, errors.ErrTokenGeneration
	}
	return Token(token), user.Profile, nil
}

func (s *AuthService) Logout() error {
	return s.userRepository.Clear()
}

func (s *AuthService) Current() (domain.UserProfile, error) {
	user, err := s.userRepository.Load()
	if err != nil {
		return domain.UserProfile{}, err
	}
	return user.Profile, nil
}

// Authenticate resolves a session token to the signed in profile.
// A token outliving a logout is refused.
func (s *AuthService) Authenticate(token string) (domain.UserProfile, error) {
	claims, err := s.tokenizer.ValidateToken(token)
	if err != nil {
		return domain.UserProfile{}, err
	}
	user, err := s.userRepository.Load()
	if err != nil || user.Profile.ID != claims.UserID {
		return domain.UserProfile{}, errors.ErrInvalidToken
	}
	return user.Profile, nil
}

// BindPhone verifies the phone number format and stores its hash with the account.
// Binding the number already on file leaves the record untouched.
func (s *AuthService) BindPhone(phone string) (domain.UserProfile, error) {
	phone = auth.NormalizePhone(phone)
	if err := auth.Validate(auth.PhoneRequest{Phone: phone}); err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %v", errors.ErrInvalidPhone, err)
	}
	user, err := s.userRepository.Load()
	if err != nil {
		return domain.UserProfile{}, err
	}

	if user.PhoneHash != "" {
		same, err := auth.ComparePhone(phone, user.PhoneHash)
		switch {
		case err != nil:
			s.log.Warn("Stored phone hash is unreadable, binding again", "user", user.Profile.ID, "error", err)
		case same && user.Profile.PhoneVerified:
			s.log.Debug("Phone already bound", "user", user.Profile.ID)
			return user.Profile, nil
		}
	}

	hash, err := auth.HashPhone(phone)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("hashing failed: %w", err)
	}
	user.PhoneHash = hash
	user.Profile.PhoneVerified = true
	user.SavedAt = time.Now().UTC()
	if err = s.userRepository.Save(user); err != nil {
		return domain.UserProfile{}, err
	}
	return user.Profile, nil
}
