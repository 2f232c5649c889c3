package middleware

import (
	"net/http/httptest"
	"testing"

	"foodbridge-backend/domain"
	"foodbridge-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(jwtService jwt.JWTService, roles ...string) *fiber.App {
	m := NewMiddleware()
	app := fiber.New()
	app.Use(m.MetricsMiddleware())
	app.Get("/protected", m.AuthMiddleware(jwtService), m.OnlyAllow(roles...), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-secret")
	app := newTestApp(jwtService, domain.RoleSeller)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Token abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer abc", fiber.StatusUnauthorized},
		{"other secret", "Bearer " + jwt.NewJWTService("other").GenerateTokenUser("1", domain.RoleSeller), fiber.StatusUnauthorized},
		{"wrong role", "Bearer " + jwtService.GenerateTokenUser("1", domain.RoleBuyer), fiber.StatusForbidden},
		{"allowed", "Bearer " + jwtService.GenerateTokenUser("1", domain.RoleSeller), fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			res, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.StatusCode)
		})
	}
}

func TestOnlyAllow_AnyOfRoles(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-secret")
	app := newTestApp(jwtService, domain.RoleBuyer, domain.RoleOrganization)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenUser("42", domain.RoleOrganization))
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
