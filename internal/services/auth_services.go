package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLen = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// dummyHash keeps the missing-user login path doing the same bcrypt work as
// the wrong-password path, so response timing does not reveal whether the
// email exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUserID(ctx context.Context, userID string) (*model.User, error)
}

type AuthService struct {
	Users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{Users: users}
}

// HashPassword produces a salted bcrypt digest. Two calls on the same
// password yield different outputs.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword returns nil when password matches hash. A corrupt stored
// hash fails closed: bcrypt reports it as an error value, never a panic.
func VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type RegisterInput struct {
	Email    string
	FullName string
	Phone    string
	Company  *string
	Password string
}

func (in RegisterInput) validate() error {
	if in.Email == "" {
		return apperrors.NewValidation("email", "required")
	}
	if !emailRegex.MatchString(in.Email) {
		return apperrors.NewValidation("email", "invalid format")
	}
	if in.FullName == "" {
		return apperrors.NewValidation("full_name", "required")
	}
	if in.Phone == "" {
		return apperrors.NewValidation("phone", "required")
	}
	if len(in.Password) < MinPasswordLen {
		return apperrors.NewValidation("password", fmt.Sprintf("must be at least %d characters", MinPasswordLen))
	}
	return nil
}

// Register creates a user, storing the bcrypt hash and never the plaintext.
// Email uniqueness is enforced by the store constraint; the repository
// surfaces a conflict as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UserID:             uuid.NewString(),
		Email:              in.Email,
		FullName:           in.FullName,
		Phone:              in.Phone,
		Company:            in.Company,
		PasswordHash:       hash,
		IsActive:           true,
		CreatedAt:          time.Now().UTC(),
		RegisteredAuctions: []string{},
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password return the same ErrInvalidCredentials, and the missing-user path
// still pays for a bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := VerifyPassword(password, u.PasswordHash); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return u, nil
}
