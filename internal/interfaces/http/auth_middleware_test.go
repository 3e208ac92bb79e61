package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	apphttp "github.com/obejashaundev/nissan-sales-server/internal/interfaces/http"
	pkgjwt "github.com/obejashaundev/nissan-sales-server/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "nissan-sales-test"
	testExpMin    = 60
)

// fakeResolver resuelve roles en memoria y cuenta las consultas: permite
// verificar que los guards que fallan ANTES de la resolución nunca tocan la
// base de datos.
type fakeResolver struct {
	roles map[string]string // userID → roleName
	calls int
}

func (f *fakeResolver) ResolveActiveRole(userID string) (string, error) {
	f.calls++
	role, ok := f.roles[userID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

// buildTestApp construye una aplicación Fiber mínima con la cadena de guards
// completa: token → usuario activo → (opcional) nivel de rol.
func buildTestApp(resolver *fakeResolver, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.ActiveUserMiddleware(resolver),
	}
	if gate != nil {
		handlers = append(handlers, gate)
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":   true,
			"role": apphttp.GetRoleName(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenFor genera un JWT de sesión para el usuario indicado.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — el guard de token nunca toca la base
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401 y cero consultas a la base.
func TestAuthMiddleware_SinHeader_Retorna401SinTocarBase(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{}}
	app := buildTestApp(resolver, nil)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, resolver.calls, "el guard de token no debe consultar la base")
}

// Esquema distinto de Bearer → 401 sin tocar la base.
func TestAuthMiddleware_EsquemaInvalido_Retorna401(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{}}
	app := buildTestApp(resolver, nil)

	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, resolver.calls)
}

// Token corrupto → 401 sin tocar la base.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{}}
	app := buildTestApp(resolver, nil)

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, resolver.calls)
}

// Token expirado → 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{}}
	app := buildTestApp(resolver, nil)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, resolver.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ActiveUserMiddleware — el rol se re-resuelve en cada petición
// ──────────────────────────────────────────────────────────────────────────────

// Token válido pero usuario ya no existe (o fue dado de baja) → 401.
func TestActiveUser_UsuarioEliminado_Retorna401(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{}}
	app := buildTestApp(resolver, nil)

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, resolver.calls, "el guard de usuario activo consulta una sola vez")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "usuario no encontrado")
}

// Usuario activo con rol → pasa y el rol queda disponible en locals.
func TestActiveUser_UsuarioConRol_PasaYPropagaRol(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: entity.RoleAdministrador}}
	app := buildTestApp(resolver, nil)

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdministrador, body["role"])
}

// Usuario activo sin rol asignado → pasa en rutas sin gate de rol.
func TestActiveUser_UsuarioSinRol_PasaSinGate(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: ""}}
	app := buildTestApp(resolver, nil)

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin / RequireMaster — predicados puros sobre el rol resuelto
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdministradorPasa(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: entity.RoleAdministrador}}
	app := buildTestApp(resolver, apphttp.RequireAdmin())

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_MasterPasa(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: entity.RoleMaster}}
	app := buildTestApp(resolver, apphttp.RequireAdmin())

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_RolComunBloqueado(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: "VENDEDOR"}}
	app := buildTestApp(resolver, apphttp.RequireAdmin())

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_SinRolBloqueado(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: ""}}
	app := buildTestApp(resolver, apphttp.RequireAdmin())

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireMaster_MasterPasa(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: entity.RoleMaster}}
	app := buildTestApp(resolver, apphttp.RequireMaster())

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ADMINISTRADOR no alcanza el nivel MASTER → 403.
func TestRequireMaster_AdministradorBloqueado(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{testUserID: entity.RoleAdministrador}}
	app := buildTestApp(resolver, apphttp.RequireMaster())

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MASTER")
}
