package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
)

// UserService implements user use-cases: registration with bcrypt hashing,
// credential checks, and partial updates that re-hash a supplied password.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.PublicUser, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.User{
		Username:  in.Username,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		PhotoURL:  in.PhotoURL,
	})
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindOne(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) FindOne(ctx context.Context, username string) (*domain.PublicUser, error) {
	user, err := s.repo.FindOne(ctx, username)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *UserService) Update(ctx context.Context, username string, fields domain.UpdateFields) (*domain.PublicUser, error) {
	if password, ok := fields["password"]; ok {
		plain, _ := password.(string)
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}

	user, err := s.repo.Update(ctx, username, fields)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}
