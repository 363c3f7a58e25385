package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "taskhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenID string
	handler := m.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestID(c)

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)

	_, err = uuid.Parse(seenID)
	assert.NoError(t, err)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_HonorsClientID(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	handler := m.Process(func(c echo.Context) error {
		assert.Equal(t, "client-supplied-id", deliverycontext.GetRequestID(c))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ScopedLoggerCarriesRequestID(t *testing.T) {
	e := echo.New()

	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := m.Process(func(c echo.Context) error {
		// The usecase layer reaches the request-scoped logger through the
		// request context, not through injection.
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
		require.NotSame(t, fallback, logger)

		logger.Info("handling")

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "request_id=req-42")
}
