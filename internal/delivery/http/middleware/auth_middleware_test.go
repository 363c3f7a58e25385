package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService validates exactly one token string.
type stubTokenService struct {
	validToken string
	userID     uuid.UUID
}

func (s *stubTokenService) Issue(uuid.UUID) (string, error) {
	return s.validToken, nil
}

func (s *stubTokenService) Validate(tokenString string) (uuid.UUID, error) {
	if tokenString != s.validToken {
		return uuid.Nil, service.ErrInvalidToken
	}

	return s.userID, nil
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	userID := uuid.New()
	tokenSvc := &stubTokenService{validToken: "good-token", userID: userID}
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAuthTestContext(t, "Bearer good-token")

	var handlerCalled bool
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true

		gotID, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_Failures(t *testing.T) {
	tokenSvc := &stubTokenService{validToken: "good-token", userID: uuid.New()}
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cases := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "no bearer prefix", authHeader: "good-token"},
		{name: "lowercase bearer", authHeader: "bearer good-token"},
		{name: "empty token", authHeader: "Bearer "},
		{name: "wrong token", authHeader: "Bearer bad-token"},
		{name: "basic scheme", authHeader: "Basic Z29vZDpwYXNz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthTestContext(t, tc.authHeader)

			var handlerCalled bool
			err := m.Authenticate(func(c echo.Context) error {
				handlerCalled = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.False(t, handlerCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			// Every failure mode gets the identical body
			assert.JSONEq(t, `{"error": "invalid or missing credentials"}`, rec.Body.String())

			// No identity leaks onto the context
			_, ok := deliverycontext.GetUserID(c)
			assert.False(t, ok)
		})
	}
}
