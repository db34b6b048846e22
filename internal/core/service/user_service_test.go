package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.PublicUser, error) {
	out := make([]domain.PublicUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := user
	r.users[user.Username] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindOne(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, username string, fields domain.UpdateFields) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if password, ok := fields["password"].(string); ok {
		u.Password = password
	}
	if email, ok := fields["email"].(*string); ok {
		u.Email = email
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("new users must not be admins")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "alice", Password: "pw12345"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "alice", Password: "pw67890"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "bob", Password: "goodpass"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "bob", "goodpass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Authenticate_SameErrorForBothFailures(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "bob", Password: "goodpass"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	_, badPassErr := svc.Authenticate(context.Background(), "bob", "wrongpass")
	_, noUserErr := svc.Authenticate(context.Background(), "ghost", "whatever")

	if !errors.Is(badPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", badPassErr)
	}
	if !errors.Is(noUserErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUserErr)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "carol", Password: "oldpass1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	oldHash := repo.users["carol"].Password

	public, err := svc.Update(context.Background(), "carol", domain.UpdateFields{"password": "newpass1"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stored := repo.users["carol"].Password
	if stored == oldHash {
		t.Fatalf("stored hash did not change")
	}
	if stored == "newpass1" {
		t.Fatalf("new password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("newpass1")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
	if public.Username != "carol" {
		t.Fatalf("unexpected public user: %+v", public)
	}
}

func TestUserService_FindOne_PublicFieldsOnly(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "dave", Password: "pw12345"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	public, err := svc.FindOne(context.Background(), "dave")
	if err != nil {
		t.Fatalf("find one: %v", err)
	}
	// PublicUser has no password or admin fields at all; check identity.
	if public.Username != "dave" {
		t.Fatalf("unexpected user: %+v", public)
	}
}
