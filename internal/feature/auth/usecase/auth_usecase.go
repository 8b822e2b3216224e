package usecase

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"hackathon_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer defines the interface for signed token generation.
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given subject.
	GenerateToken(subject string, isAdmin bool) (string, error)
}

// AdminCredentials holds the sentinel admin identity configured through the
// environment. When Email is empty the sentinel login path is disabled.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthUsecase implements registration, login and identity resolution.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	admin  AdminCredentials
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, admin AdminCredentials) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		admin:  admin,
	}
}

// Register creates a new non-admin user with a bcrypt-hashed password and
// returns the resolved principal together with a fresh token.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.Principal, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(formatUserID(user.ID), false)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return principalFromUser(user), token, nil
}

// Login authenticates either the sentinel admin or a stored user.
//
// The sentinel admin credentials are checked first and never touch the store,
// so the admin can log in even when the database is down. For stored users a
// dummy bcrypt comparison runs even when the email is unknown, to keep the
// response time independent of whether the account exists.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.Principal, string, error) {
	if u.admin.Email != "" && email == u.admin.Email && password == u.admin.Password {
		token, err := u.tokens.GenerateToken(entity.SentinelAdminID, true)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate token: %w", err)
		}
		return u.sentinelPrincipal(), token, nil
	}

	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// One generic error for both unknown email and wrong password.
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(formatUserID(user.ID), user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return principalFromUser(user), token, nil
}

// Resolve turns a verified token subject into a concrete principal.
//
// The sentinel admin is checked before any store access: it has no backing
// row, and a lookup would spuriously fail. Any other subject is a decimal
// user ID looked up in the store; the admin flag always comes from the row.
func (u *AuthUsecase) Resolve(ctx context.Context, subject string) (*entity.Principal, error) {
	if subject == entity.SentinelAdminID {
		return u.sentinelPrincipal(), nil
	}

	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := u.users.FindByID(ctx, uint(id))
	if err != nil {
		return nil, err
	}

	return principalFromUser(user), nil
}

func (u *AuthUsecase) sentinelPrincipal() *entity.Principal {
	return &entity.Principal{
		ID:      entity.SentinelAdminID,
		Name:    "Admin",
		Email:   u.admin.Email,
		IsAdmin: true,
	}
}

func principalFromUser(user *entity.User) *entity.Principal {
	return &entity.Principal{
		ID:      formatUserID(user.ID),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

func formatUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
