package userapp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	userEntity "cuff/internal/core/user"
	userPort "cuff/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService manages the user directory: registration, login and
// preference updates.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// RegisterUser creates a new user. The admin flag is never settable
// through registration.
func (s *UserService) RegisterUser(ctx context.Context, in userPort.RegisterInput) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, userPort.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Password:             string(hashedPassword),
		NotificationType:     in.NotificationType,
		DietaryPreferences:   in.DietaryPreferences,
		IsAdmin:              false,
		NotificationsEnabled: in.NotificationsEnabled,
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

// LoginUser checks the credentials and issues a JWT.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *toDTO(u),
	}, nil
}

func (s *UserService) generateJWT(u *userEntity.User, expiresAt int64) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   strconv.FormatUint(uint64(u.ID), 10),
		Issuer:    "cuff",
		ExpiresAt: expiresAt,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*userPort.UserDTO, error) {
	users, err := s.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	return dtos, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.UserRepository.DeleteByID(ctx, id)
}

// UpdatePreferences overwrites the user's notification channel and
// dietary tag. Returns the preferences as persisted, read back from the
// saved row.
func (s *UserService) UpdatePreferences(ctx context.Context, userID uint, prefs userPort.PreferencesDTO) (*userPort.PreferencesDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.NotificationType = prefs.NotificationType
	u.DietaryPreferences = prefs.DietaryPreferences

	saved, err := s.UserRepository.Save(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return &userPort.PreferencesDTO{
		NotificationType:   saved.NotificationType,
		DietaryPreferences: saved.DietaryPreferences,
	}, nil
}

func toDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:                   u.ID,
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		Email:                u.Email,
		NotificationType:     u.NotificationType,
		DietaryPreferences:   u.DietaryPreferences,
		IsAdmin:              u.IsAdmin,
		NotificationsEnabled: u.NotificationsEnabled,
	}
}
