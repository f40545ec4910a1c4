package http

import (
	"crypto/subtle"
	"strings"

	"exchanger/internal/controllers"
	"exchanger/models"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

const claimsKey = "claims"

type Middleware struct {
	appName string
	fiber   *fiber.App
	crypto  controllers.CryptoCtrl
	apiKey  string
	logger  *logrus.Logger
}

func NewMiddleware(
	fiber *fiber.App,
	appName string,
	crypto controllers.CryptoCtrl,
	apiKey string,
	logger *logrus.Logger,
) *Middleware {
	return &Middleware{
		appName: appName,
		fiber:   fiber,
		crypto:  crypto,
		apiKey:  apiKey,
		logger:  logger,
	}
}

func (m *Middleware) useRecover() {
	m.fiber.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			m.logger.
				WithField("path", c.Path()).
				Errorf("panic: %v", e)
		},
	}))
}

// UseMetrics serves /metrics and counts requests. It registers collectors
// on the default registry, so call it once per process.
func (m *Middleware) UseMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

// RequireAuth accepts a bearer token whose role is one of roles and stores
// its claims in the request locals.
func (m *Middleware) RequireAuth(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := m.crypto.ParseToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Locals(claimsKey, claims)
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusForbidden, "role "+claims.Role.ToString()+" is not allowed here")
	}
}

// RequireAPIKey guards merchant routes. An empty configured key closes them.
func (m *Middleware) RequireAPIKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-API-Key")

		if m.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid api key")
		}

		return c.Next()
	}
}
