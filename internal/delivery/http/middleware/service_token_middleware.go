package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"taskhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ServiceTokenMiddleware gates machine-to-machine routes behind a static
// shared token. It is independent of the user authentication middleware and
// attaches no principal to the request.
type ServiceTokenMiddleware struct {
	// sha256 of the configured token; comparing digests keeps the
	// comparison constant-time regardless of presented length.
	expectedDigest [sha256.Size]byte
	logger         *slog.Logger
}

// NewServiceTokenMiddleware is the constructor for ServiceTokenMiddleware.
func NewServiceTokenMiddleware(serviceToken string, logger *slog.Logger) (*ServiceTokenMiddleware, error) {
	if serviceToken == "" {
		return nil, errors.New("service token must be provided")
	}

	return &ServiceTokenMiddleware{
		expectedDigest: sha256.Sum256([]byte(serviceToken)),
		logger:         logger,
	}, nil
}

// RequireServiceToken rejects the request unless it presents the configured
// token. Missing, malformed, and wrong tokens all get the identical 401.
func (m *ServiceTokenMiddleware) RequireServiceToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		presented, ok := bearerToken(c)
		if !ok {
			m.logger.Debug("Service token rejected",
				slog.String("reason", "missing or malformed authorization header"),
				slog.String("path", c.Request().URL.Path),
			)

			return response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
		}

		presentedDigest := sha256.Sum256([]byte(presented))
		if subtle.ConstantTimeCompare(presentedDigest[:], m.expectedDigest[:]) != 1 {
			m.logger.Debug("Service token rejected",
				slog.String("reason", "token mismatch"),
				slog.String("path", c.Request().URL.Path),
			)

			return response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
		}

		return next(c)
	}
}
