package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optcg-tracker/models"
	"optcg-tracker/utils"
)

func authedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": CurrentUserID(c),
			"role":    CurrentUserRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(&models.User{ID: "user-1", Name: "Nami", Role: role})
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RolePlayer))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestRequireRolesForbidsPlayer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authedApp(t, RequireRoles(models.RoleJudge, models.RoleAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RolePlayer))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestRequireRolesAllowsJudgeAndAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authedApp(t, RequireRoles(models.RoleJudge, models.RoleAdmin))

	for _, role := range []models.Role{models.RoleJudge, models.RoleAdmin} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, role))
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode, "role %s", role)
	}
}
