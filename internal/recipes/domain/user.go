package domain

import "time"

// User is an account holder. PasswordHash is only ever derived through
// cryptox.HashPassword at signup; there is no getter for the plaintext and
// the hash never appears in API payloads (see PublicUser).
type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id, PHC encoded
	Bio          string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-visible projection of a User. It deliberately has
// no credential field at all, so serializing it can never leak the hash.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// Public returns the client-visible projection of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	}
}
