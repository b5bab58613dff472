package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

const fruitsJSON = `{"name":"Fruits","description":"Fresh Fruits","price":15.99,"stock":100}`

func createProduct(t *testing.T, env *testEnv, payload, authHeader string) map[string]any {
	t.Helper()
	status, body := doJSON(t, env.app, http.MethodPost, "/products", payload, authHeader)
	require.Equal(t, fiber.StatusCreated, status, body)
	return body
}

func TestProducts_CRUD(t *testing.T) {
	env := newTestEnv(t, false)

	created := createProduct(t, env, fruitsJSON, "")
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Fruits", created["name"])
	assert.Equal(t, 15.99, created["price"])
	assert.Equal(t, float64(100), created["stock"])

	status, body := doJSON(t, env.app, http.MethodGet, "/products/1", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Fresh Fruits", body["description"])

	status, body = doJSON(t, env.app, http.MethodPut, "/products/1", `{"price":9.5}`, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, 9.5, body["price"])
	assert.Equal(t, "Fruits", body["name"])

	status, body = doJSON(t, env.app, http.MethodPatch, "/products/1", `{"stock":0}`, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, float64(0), body["stock"])

	status, body = doJSON(t, env.app, http.MethodDelete, "/products/1", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Product with id 1 is removed.", body["message"])

	status, body = doJSON(t, env.app, http.MethodGet, "/products/1", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Product with id 1 does not exist", body["error"])
}

func TestProducts_List(t *testing.T) {
	env := newTestEnv(t, false)

	status, raw := do(t, env.app, http.MethodGet, "/products", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	createProduct(t, env, fruitsJSON, "")
	createProduct(t, env, `{"name":"Vegetables","description":"Fresh Vegetables","price":10.99,"stock":200}`, "")

	status, raw = do(t, env.app, http.MethodGet, "/products", "", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Fruits", list[0]["name"])
	assert.Equal(t, "Vegetables", list[1]["name"])
}

func TestProducts_CamposOpcionalesNull(t *testing.T) {
	env := newTestEnv(t, false)

	created := createProduct(t, env, `{"name":"Bread"}`, "")
	assert.Nil(t, created["description"])
	assert.Nil(t, created["price"])
	assert.Nil(t, created["stock"])
}

func TestProducts_MensajesNoExiste(t *testing.T) {
	env := newTestEnv(t, false)

	cases := []struct {
		method, path, body, msg string
	}{
		{http.MethodGet, "/products/99", "", "Product with id 99 does not exist"},
		{http.MethodGet, "/products/abc", "", "Product with id abc does not exist"},
		{http.MethodPut, "/products/99", `{"name":"x"}`, "Product with id 99 doesn't exist"},
		{http.MethodPatch, "/products/99", `{"name":"x"}`, "Product with id 99 doesn't exist"},
		{http.MethodDelete, "/products/99", "", "Product with id 99 doesn't exist"},
	}
	for _, tc := range cases {
		status, body := doJSON(t, env.app, tc.method, tc.path, tc.body, "")
		assert.Equal(t, fiber.StatusNotFound, status, tc.method+" "+tc.path)
		assert.Equal(t, tc.msg, body["error"], tc.method+" "+tc.path)
	}
}

func TestProducts_EntradaInvalida(t *testing.T) {
	env := newTestEnv(t, false)
	createProduct(t, env, fruitsJSON, "")

	status, body := doJSON(t, env.app, http.MethodPost, "/products", `{"price":1}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "name is required", body["error"])

	status, body = doJSON(t, env.app, http.MethodPost, "/products", `{"name":`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["error"])

	status, body = doJSON(t, env.app, http.MethodPut, "/products/1", `{"name":""}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "name is required", body["error"])
}

func TestProducts_LimitesDeColumnas(t *testing.T) {
	env := newTestEnv(t, false)
	createProduct(t, env, fruitsJSON, "")

	long := strings.Repeat("n", 101)
	status, body := doJSON(t, env.app, http.MethodPost, "/products", `{"name":"`+long+`"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "name is invalid", body["error"])

	status, body = doJSON(t, env.app, http.MethodPut, "/products/1", `{"name":"`+long+`"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "name is invalid", body["error"])

	status, body = doJSON(t, env.app, http.MethodPost, "/products", `{"name":"Big","stock":3000000000}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "stock is invalid", body["error"])

	status, body = doJSON(t, env.app, http.MethodPatch, "/products/1", `{"stock":-3000000000}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "stock is invalid", body["error"])

	// 100 caracteres multibyte caben en VARCHAR(100)
	created := createProduct(t, env, `{"name":"`+strings.Repeat("ñ", 100)+`"}`, "")
	assert.Equal(t, strings.Repeat("ñ", 100), created["name"])
}

func TestProducts_PrecioSinRedondeo(t *testing.T) {
	env := newTestEnv(t, false)

	created := createProduct(t, env, `{"name":"x","price":1.005}`, "")
	assert.Equal(t, 1.005, created["price"])

	status, raw := do(t, env.app, http.MethodGet, "/products/1", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"x","description":null,"price":1.005,"stock":null}`, string(raw))
}

func TestProducts_EscrituraProtegida(t *testing.T) {
	env := newTestEnv(t, true)

	status, body := doJSON(t, env.app, http.MethodPost, "/products", fruitsJSON, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Missing bearer token", body["error"])

	status, _ = doJSON(t, env.app, http.MethodPost, "/products", fruitsJSON, bearer(t, env.tokens, "2", false))
	assert.Equal(t, fiber.StatusForbidden, status)

	admin := bearer(t, env.tokens, "1", true)
	createProduct(t, env, fruitsJSON, admin)

	// lectura pública
	status, _ = doJSON(t, env.app, http.MethodGet, "/products/1", "", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, env.app, http.MethodDelete, "/products/1", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = doJSON(t, env.app, http.MethodDelete, "/products/1", "", admin)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestApp_RequestIDYRutaInexistente(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	status, body := doJSON(t, env.app, http.MethodGet, "/nope", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Cannot GET /nope", body["error"])
}
