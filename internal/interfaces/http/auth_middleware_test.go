package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Deposito-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Deposito-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "user_1"
	testRoleID    = "role_admin"
	testIssuer    = "deposito-api-test"
	testExpMin    = 60
)

// stubChecker concede solo los pares módulo/acción cargados en allowed.
type stubChecker struct {
	allowed map[string]bool
	err     error
	calls   int
}

func (s *stubChecker) HasPermission(_ context.Context, userID string, module entity.Module, action entity.Action) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return userID != "" && s.allowed[string(module)+"/"+string(action)], nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission sobre products/delete
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(checker *stubChecker) *fiber.App {
	app := fiber.New()
	app.Delete("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(checker, entity.ModuleProducts, entity.ActionDelete),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testRoleID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición DELETE /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_ConPermisoPasa(t *testing.T) {
	app := buildTestApp(&stubChecker{allowed: map[string]bool{"products/delete": true}})
	resp := doRequest(t, app, bearer(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
}

func TestRequirePermission_SinAccionRetorna403(t *testing.T) {
	app := buildTestApp(&stubChecker{allowed: map[string]bool{"products/read": true}})
	resp := doRequest(t, app, bearer(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequirePermission_FalloDelCheckerRetorna503(t *testing.T) {
	app := buildTestApp(&stubChecker{err: errors.New("store caído")})
	resp := doRequest(t, app, bearer(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PERMISSION_CHECK_FAILED")
}

func TestRequirePermission_SinUsuarioEnContextoRetorna401(t *testing.T) {
	checker := &stubChecker{allowed: map[string]bool{"products/delete": true}}
	app := fiber.New()
	app.Delete("/protected",
		apphttp.RequirePermission(checker, entity.ModuleProducts, entity.ActionDelete),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, checker.calls, "no debe consultarse el permiso sin usuario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeaderRetorna401(t *testing.T) {
	app := buildTestApp(&stubChecker{})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(&stubChecker{})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearerRetorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(&stubChecker{})
	resp := doRequest(t, app, "Token "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp(&stubChecker{allowed: map[string]bool{"products/delete": true}})
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
