package store

import (
	"context"
	"errors"

	"github.com/potlucklabs/potluck/internal/recipes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConstraint covers database-level safety-net violations (foreign key,
	// CHECK). Entity validation should have caught these first; services
	// normalize this to the same validation error kind.
	ErrConstraint = errors.New("store: constraint violated")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Recipes() Recipes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and signup uniqueness checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on a username uniqueness violation.
	CreateUser(ctx context.Context, u domain.User) error
}

type Recipes interface {
	// CreateRecipe inserts a new recipe (id is provided by app via ULID).
	// Returns ErrConstraint if a database-level safety net rejects the row.
	CreateRecipe(ctx context.Context, r domain.Recipe) error

	// ListRecipesByOwner returns every recipe owned by ownerID in id order
	// (ULIDs sort by creation time, so this is insertion order).
	ListRecipesByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)
}
