package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
	"github.com/joblyhq/jobs-api/internal/core/token"
)

type stubUserService struct {
	users      map[string]*domain.User
	lastFields domain.UpdateFields
}

func newStubUserService() *stubUserService {
	return &stubUserService{users: make(map[string]*domain.User)}
}

func (s *stubUserService) FindAll(_ context.Context) ([]domain.PublicUser, error) {
	return []domain.PublicUser{}, nil
}

func (s *stubUserService) Register(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	if _, exists := s.users[in.Username]; exists {
		return nil, domain.ErrUserExists
	}
	user := &domain.User{
		Username:  in.Username,
		Password:  "hashed:" + in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		PhotoURL:  in.PhotoURL,
	}
	s.users[in.Username] = user
	return user, nil
}

func (s *stubUserService) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok || user.Password != "hashed:"+password {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *stubUserService) FindOne(_ context.Context, username string) (*domain.PublicUser, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	pub := user.Public()
	return &pub, nil
}

func (s *stubUserService) Update(_ context.Context, username string, fields domain.UpdateFields) (*domain.PublicUser, error) {
	s.lastFields = fields
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	pub := user.Public()
	return &pub, nil
}

func (s *stubUserService) Delete(_ context.Context, username string) error {
	if _, ok := s.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, username)
	return nil
}

func TestUserHandler_Register_IssuesVerifiableToken(t *testing.T) {
	e := newTestEcho()
	codec := token.NewCodec("test-secret", time.Hour)
	h := NewUserHandler(newStubUserService(), codec)

	body := `{"username":"alice","password":"secret","first_name":"Alice","last_name":"Liddell","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims, err := codec.Verify(resp.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Username != "alice" || claims.IsAdmin {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(newStubUserService(), token.NewCodec("test-secret", time.Hour))

	body := `{"username":"alice","password":"abc","first_name":"Alice","last_name":"Liddell","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %v", err)
	}
}

func TestUserHandler_Update_RejectsAdminFlag(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(newStubUserService(), token.NewCodec("test-secret", time.Hour))

	for _, body := range []string{
		`{"is_admin":true}`,
		`{"username":"mallory"}`,
	} {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("username")
		c.SetParamValues("alice")

		err := h.Update(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestUserHandler_Update_ResponseOmitsSecrets(t *testing.T) {
	e := newTestEcho()
	svc := newStubUserService()
	_, _ = svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice",
		Password: "secret",
	})
	h := NewUserHandler(svc, token.NewCodec("test-secret", time.Hour))

	body := `{"first_name":"Alicia","password":"newsecret"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	var payload map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	user := payload["user"]
	if _, ok := user["password"]; ok {
		t.Fatalf("password leaked in response: %v", user)
	}
	if _, ok := user["is_admin"]; ok {
		t.Fatalf("admin flag leaked in response: %v", user)
	}
	if _, ok := svc.lastFields["password"]; !ok {
		t.Fatalf("password not forwarded for re-hash: %v", svc.lastFields)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	svc := newStubUserService()
	_, _ = svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice",
		Password: "secret",
	})
	h := NewAuthHandler(svc, token.NewCodec("test-secret", time.Hour))

	body := `{"username":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthHandler_Login_ReturnsToken(t *testing.T) {
	e := newTestEcho()
	svc := newStubUserService()
	_, _ = svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice",
		Password: "secret",
	})
	codec := token.NewCodec("test-secret", time.Hour)
	h := NewAuthHandler(svc, codec)

	body := `{"username":"alice","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := codec.Verify(resp.Token); err != nil {
		t.Fatalf("verify login token: %v", err)
	}
}
