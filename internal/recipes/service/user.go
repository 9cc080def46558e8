package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/potlucklabs/potluck/internal/recipes/domain"
	"github.com/potlucklabs/potluck/internal/recipes/store"
	"github.com/potlucklabs/potluck/pkg/cryptox"
	"github.com/potlucklabs/potluck/pkg/idx"
	"github.com/potlucklabs/potluck/pkg/slogx"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a login response never reveals which one occurred.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserNotFound = errors.New("user not found")
)

type UserService struct {
	Store store.Store
}

// SignUpParams carries the signup input. Bio and ImageURL are optional.
type SignUpParams struct {
	Username string
	Password string
	Bio      string
	ImageURL string
}

// SignUp validates the params, hashes the password and creates the user
// atomically. The raw password is never stored or logged.
func (s *UserService) SignUp(ctx context.Context, p SignUpParams) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input before touching the store.
	if p.Username == "" || p.Password == "" {
		log.Warn("signup missing required fields")
		return domain.User{}, ErrMissingCredentials
	}

	// 2. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPassword) {
			return domain.User{}, ErrMissingCredentials
		}
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     p.Username,
		PasswordHash: passwordHash,
		Bio:          p.Bio,
		ImageURL:     p.ImageURL,
	}

	// 3. Create the user in a transaction. Username uniqueness is decided by
	// the database constraint so two concurrent signups race safely: exactly
	// one insert commits, the other rolls back with ErrAlreadyExists.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup attempted with already-taken username",
				slog.String("username", p.Username),
			)
			return domain.User{}, ErrUsernameTaken
		}
		log.Error("failed to create user",
			slog.String("username", p.Username),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login checks the username/password pair. Unknown usernames and wrong
// passwords fail identically with ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("failed login attempt", slog.String("username", username))
		return domain.User{}, ErrInvalidCredentials
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// GetUserByID fetches a user by id, mapping a missing row to ErrUserNotFound.
// Used to resolve the session's user; a stale session referencing a deleted
// user surfaces here.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
