package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"company not found", domain.ErrCompanyNotFound, http.StatusNotFound},
		{"job not found", domain.ErrJobNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"duplicate company", domain.ErrCompanyExists, http.StatusBadRequest},
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest},
		{"inverted employee range", domain.ErrEmployeeRange, http.StatusBadRequest},
		{"empty update", domain.ErrNoUpdateFields, http.StatusBadRequest},
		{"key column update", domain.ErrKeyFieldUpdate, http.StatusBadRequest},
		{"null required column", domain.ErrNullColumn, http.StatusBadRequest},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d", code, tt.wantCode)
			}
			if msg == "" {
				t.Fatalf("empty error message")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup apple"), domain.ErrCompanyNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("code = %d, want %d", code, http.StatusNotFound)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "you must authenticate first"))
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want %d", code, http.StatusUnauthorized)
	}
	if msg != "you must authenticate first" {
		t.Fatalf("message = %q", msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorHidden(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want %d", code, http.StatusInternalServerError)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
