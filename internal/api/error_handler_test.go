package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

func render(t *testing.T, path string, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", fmt.Errorf("%w: title required", domain.ErrValidation), http.StatusBadRequest},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusBadRequest},
		{"duplicate application", domain.ErrDuplicateApplication, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"job not found", domain.ErrJobNotFound, http.StatusNotFound},
		{"application not found", domain.ErrApplicationNotFound, http.StatusNotFound},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"unexpected", fmt.Errorf("mongo: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, "/api/jobs", tc.err)
			if code != tc.code {
				t.Fatalf("status = %d, want %d", code, tc.code)
			}
			if msg == "" {
				t.Fatal("expected a message in the envelope")
			}
		})
	}
}

// An unknown email on login answers 400, everywhere else it is a 404.
func TestErrorHandler_LoginUserNotFound(t *testing.T) {
	code, _ := render(t, "/login", domain.ErrUserNotFound)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 on /login", code)
	}
}

func TestErrorHandler_InternalDetailNotLeaked(t *testing.T) {
	_, msg := render(t, "/api/jobs", fmt.Errorf("dial tcp 10.0.0.5:27017: i/o timeout"))
	if msg != "server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	code, msg := render(t, "/api/jobs", echo.NewHTTPError(http.StatusUnauthorized, "access denied, no token provided"))
	if code != http.StatusUnauthorized || msg != "access denied, no token provided" {
		t.Fatalf("got %d %q", code, msg)
	}
}
