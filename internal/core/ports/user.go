package ports

import (
	"context"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.PublicUser, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	FindOne(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, username string, fields domain.UpdateFields) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}

// RegisterUserInput carries the fields of a registration request. Password
// is plaintext; the service hashes it before storage.
type RegisterUserInput struct {
	Username  string
	Password  string
	FirstName *string
	LastName  *string
	Email     *string
	PhotoURL  *string
}

// UserService defines user use-cases consumed by the HTTP layer.
type UserService interface {
	FindAll(ctx context.Context) ([]domain.PublicUser, error)
	// Register hashes the password and stores a new user. The returned
	// record includes the admin flag so a credential token can be issued.
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	// Authenticate returns the stored user only when the password matches;
	// unknown usernames and wrong passwords fail identically.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	FindOne(ctx context.Context, username string) (*domain.PublicUser, error)
	// Update re-hashes a supplied password and never returns the hash or
	// admin flag.
	Update(ctx context.Context, username string, fields domain.UpdateFields) (*domain.PublicUser, error)
	Delete(ctx context.Context, username string) error
}
