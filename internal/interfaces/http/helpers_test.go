package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/security"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "catalogo-api-test"
)

// testEnv app completa sobre repositorios en memoria.
type testEnv struct {
	app    *fiber.App
	tokens *jwt.Issuer
	users  *memory.UserRepo
}

func newTestEnv(t *testing.T, protectWrites bool) *testEnv {
	t.Helper()
	tokens := jwt.NewIssuer(testJWTSecret, testIssuer, jwt.TokenTTL)
	users := memory.NewUserRepository()
	app := apphttp.NewApp("catalogo-api-test")
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:            usecase.NewProductUseCase(memory.NewProductRepository(), usecase.ProductOptions{}),
		AuthUC:               auth.NewAuthUseCase(users, security.NewBcryptHasher(bcrypt.MinCost), tokens),
		Tokens:               tokens,
		ProtectProductWrites: protectWrites,
	})
	return &testEnv{app: app, tokens: tokens, users: users}
}

// bearer genera el header Authorization para un usuario.
func bearer(t *testing.T, tokens *jwt.Issuer, userID string, isAdmin bool) string {
	t.Helper()
	tok, err := tokens.Issue(userID, isAdmin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do ejecuta la petición y devuelve status y cuerpo crudo.
func do(t *testing.T, app *fiber.App, method, path, body, authHeader string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON igual que do pero decodifica el cuerpo como objeto.
func doJSON(t *testing.T, app *fiber.App, method, path, body, authHeader string) (int, map[string]any) {
	t.Helper()
	status, raw := do(t, app, method, path, body, authHeader)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	return status, out
}

