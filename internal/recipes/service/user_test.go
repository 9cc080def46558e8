package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/potlucklabs/potluck/internal/recipes/store"
	"github.com/potlucklabs/potluck/internal/recipes/store/drivers/sqlite"
	"github.com/potlucklabs/potluck/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "potluck-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUserServiceSignUp(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := svc.SignUp(ctx, SignUpParams{
			Username: "ana",
			Password: "pw123",
			Bio:      "loves soup",
			ImageURL: "https://example.com/ana.png",
		})
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "ana", user.Username)
		require.Equal(t, "loves soup", user.Bio)

		// The stored credential is a salted hash, never the plaintext.
		require.NotEqual(t, "pw123", user.PasswordHash)
		require.Contains(t, user.PasswordHash, "$argon2id$")
		require.NoError(t, cryptox.VerifyPassword("pw123", user.PasswordHash))
	})

	t.Run("optional fields default to empty", func(t *testing.T) {
		user, err := svc.SignUp(ctx, SignUpParams{Username: "bare", Password: "pw123"})
		require.NoError(t, err)
		require.Empty(t, user.Bio)
		require.Empty(t, user.ImageURL)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := svc.SignUp(ctx, SignUpParams{Password: "pw123"})
		require.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.SignUp(ctx, SignUpParams{Username: "ana2"})
		require.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("duplicate username leaves first user untouched", func(t *testing.T) {
		first, err := svc.SignUp(ctx, SignUpParams{Username: "taken", Password: "firstpw"})
		require.NoError(t, err)

		_, err = svc.SignUp(ctx, SignUpParams{Username: "taken", Password: "secondpw"})
		require.ErrorIs(t, err, ErrUsernameTaken)

		// First signup's credentials must be unaffected by the rollback.
		got, err := svc.Login(ctx, "taken", "firstpw")
		require.NoError(t, err)
		require.Equal(t, first.ID, got.ID)
	})
}

func TestUserServiceLogin(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	created, err := svc.SignUp(ctx, SignUpParams{Username: "ana", Password: "pw123"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "ana", "pw123")
		require.NoError(t, err)
		require.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		_, wrongPw := svc.Login(ctx, "ana", "nope")
		_, unknown := svc.Login(ctx, "ghost", "pw123")

		require.ErrorIs(t, wrongPw, ErrInvalidCredentials)
		require.ErrorIs(t, unknown, ErrInvalidCredentials)
		require.Equal(t, wrongPw.Error(), unknown.Error(), "no information leak")
	})
}

func TestUserServiceGetUserByID(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	created, err := svc.SignUp(ctx, SignUpParams{Username: "ana", Password: "pw123"})
	require.NoError(t, err)

	t.Run("existing user", func(t *testing.T) {
		user, err := svc.GetUserByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "ana", user.Username)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.GetUserByID(ctx, "01K00000000000000000000000")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
