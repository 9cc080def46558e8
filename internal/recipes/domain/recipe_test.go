package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipeValidate(t *testing.T) {
	valid := Recipe{
		Title:        "Soup",
		Instructions: strings.Repeat("x", MinInstructionsLen),
	}

	t.Run("valid recipe passes", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		r := valid
		r.Title = ""
		require.ErrorIs(t, r.Validate(), ErrTitleRequired)
	})

	t.Run("missing instructions", func(t *testing.T) {
		r := valid
		r.Instructions = ""
		require.ErrorIs(t, r.Validate(), ErrInstructionsRequired)
	})

	t.Run("instructions length boundary", func(t *testing.T) {
		r := valid
		r.Instructions = strings.Repeat("x", MinInstructionsLen-1)
		require.ErrorIs(t, r.Validate(), ErrInstructionsTooShort)

		r.Instructions = strings.Repeat("x", MinInstructionsLen)
		require.NoError(t, r.Validate())
	})
}

func TestUserPublic_OmitsPasswordHash(t *testing.T) {
	u := User{
		ID:           "u1",
		Username:     "ana",
		PasswordHash: "$argon2id$v=19$...",
		Bio:          "cook",
		ImageURL:     "https://example.com/a.png",
	}

	pub := u.Public()
	require.Equal(t, "u1", pub.ID)
	require.Equal(t, "ana", pub.Username)
	require.Equal(t, "cook", pub.Bio)
	require.Equal(t, "https://example.com/a.png", pub.ImageURL)
}
