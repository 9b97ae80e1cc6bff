package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"finance_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken if the email is
	// already registered and ErrCreateUser if the insert affects zero rows.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address.
	// It returns ErrUserNotFound if no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns ErrUserNotFound if no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByEmail reports whether any user holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// EmailInUseByOther reports whether a user other than id holds the email.
	EmailInUseByOther(ctx context.Context, email string, id uint) (bool, error)

	// Update overwrites nome, email and senha for the user's ID.
	// It returns ErrUpdateUser if the update affects zero rows.
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator issues signed bearer tokens for authenticated users.
// Defined here so the usecase does not depend on the JWT platform package.
type TokenGenerator interface {
	GenerateToken(userID uint) (string, error)
}

// AuthUsecase implements registration, login and profile maintenance.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new AuthUsecase with the given dependencies.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password and returns the created
// user re-read from storage, without the credential field.
func (u *AuthUsecase) Register(ctx context.Context, nome, email, senha string) (*entity.PublicUser, error) {
	taken, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Nome: nome, Email: email, Senha: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Re-read by email so the response reflects exactly what was persisted.
	created, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	pub := created.Public()
	return &pub, nil
}

// Login authenticates a user and returns the public user plus a signed token.
// A missing user and a wrong password fail with distinct errors; the HTTP
// layer maps them to different status codes.
func (u *AuthUsecase) Login(ctx context.Context, email, senha string) (*entity.PublicUser, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	pub := user.Public()
	return &pub, token, nil
}

// UpdateProfile replaces nome, email and senha for the given user. The
// password is re-hashed unconditionally, even when unchanged.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uint, nome, email, senha string) error {
	inUse, err := u.users.EmailInUseByOther(ctx, email, userID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEmailTakenByOther
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.users.Update(ctx, &entity.User{
		ID:    userID,
		Nome:  nome,
		Email: email,
		Senha: string(hashed),
	})
}
