package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/postventa/garantias-api/internal/interfaces/http"
	"github.com/postventa/garantias-api/internal/domain/role"
	pkgjwt "github.com/postventa/garantias-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "garantias-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRol para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowed ...role.Role) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRol(allowed...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
				"roles":   apphttp.GetRoles(c).Strings(),
			})
		},
	)
	return app
}

// tokenConRoles genera un JWT con el conjunto de roles indicado.
func tokenConRoles(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, roles, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) (code string) {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	code, _ = body["code"].(string)
	return code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRol
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario porta el rol requerido → debe pasar (HTTP 200).
func TestRequireRol_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, tokenConRoles(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
}

// Caso 2: Multi-rol: basta con portar uno de los permitidos → HTTP 200.
func TestRequireRol_BastaUnoDelConjunto(t *testing.T) {
	app := buildTestApp(role.Admin, role.Apoderado)
	resp := doRequest(t, app, tokenConRoles(t, "usuario_bienes", "apoderado"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un apoderado debe pasar una puerta admin|apoderado aunque también sea usuario_bienes")
}

// Caso 3: Ningún rol del token está permitido → HTTP 403.
func TestRequireRol_RolInsuficiente(t *testing.T) {
	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, tokenConRoles(t, "usuario_bienes"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp))
}

// Caso 4: Token sin roles → HTTP 401, no 403: es un token malformado, no una
// denegación de acceso.
func TestRequireRol_TokenSinRoles(t *testing.T) {
	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, tokenConRoles(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLES", decodeError(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp))
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp))
}

func TestAuthMiddleware_TokenConFirmaAjena(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, []string{"admin"}, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp))
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, []string{"admin"}, testIssuer, -5)
	require.NoError(t, err)

	app := buildTestApp(role.Admin)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp))
}
