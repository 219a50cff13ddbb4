package middleware

import (
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/NeuralTrust/FormGuard/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type sessionMiddleware struct {
	logger  *logrus.Logger
	manager jwt.Manager
	config  SessionConfig
}

// NewSessionMiddleware resolves the visitor session from the signed session
// cookie and stores its id in the request locals. Visitors without a valid
// cookie get a fresh session.
func NewSessionMiddleware(
	logger *logrus.Logger,
	manager jwt.Manager,
	config SessionConfig,
) Middleware {
	if config.CookieName == "" {
		config.CookieName = common.DefaultSessionCookieName
	}
	if config.TTL <= 0 {
		config.TTL = common.DefaultSessionTTL
	}
	return &sessionMiddleware{
		logger:  logger,
		manager: manager,
		config:  config,
	}
}

func (m *sessionMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if raw := ctx.Cookies(m.config.CookieName); raw != "" {
			claims, err := m.manager.DecodeToken(raw)
			if err == nil {
				ctx.Locals(string(common.SessionContextKey), claims.SessionID())
				return ctx.Next()
			}
			m.logger.WithError(err).Debug("discarding session cookie")
		}

		sessionID := uuid.NewString()
		token, err := m.manager.CreateToken(sessionID)
		if err != nil {
			m.logger.WithError(err).Error("failed to sign session token")
			return ctx.Next()
		}

		ctx.Cookie(&fiber.Cookie{
			Name:     m.config.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(m.config.TTL),
			HTTPOnly: true,
			Secure:   m.config.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		ctx.Locals(string(common.SessionContextKey), sessionID)
		return ctx.Next()
	}
}
