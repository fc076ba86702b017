package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evsu_library_backend/internals/databases/dbtest"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	ctl := NewUsersController(dbtest.Open(t))
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	r := app.Group("/api/users")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestCreateUserNeverEchoesPassword(t *testing.T) {
	app := newApp(t)

	status, body := do(t, app, "POST", "/api/users",
		`{"full_name":"Jose Rizal","email":"jose@evsu.edu.ph","password":"noli-me-tangere","student_id":"2021-0042"}`)
	require.Equal(t, 201, status, body)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "noli-me-tangere")

	var out map[string]any
	require.NoError(t, sonic.UnmarshalString(body, &out))
	data := out["data"].(map[string]any)
	assert.Equal(t, "student", data["role"])
	assert.Equal(t, "2021-0042", data["student_id"])

	status, body = do(t, app, "GET", "/api/users/1", "")
	assert.Equal(t, 200, status)
	assert.NotContains(t, body, "password")
}

func TestCreateUserErrors(t *testing.T) {
	app := newApp(t)

	status, body := do(t, app, "POST", "/api/users", `{"full_name":"X","email":"not-an-email","password":"short","role":"dean"}`)
	assert.Equal(t, 422, status)
	for _, field := range []string{"email", "password", "role"} {
		assert.Contains(t, body, `"`+field+`"`)
	}

	payload := `{"full_name":"A","email":"a@evsu.edu.ph","password":"password1"}`
	status, _ = do(t, app, "POST", "/api/users", payload)
	require.Equal(t, 201, status)
	status, body = do(t, app, "POST", "/api/users", payload)
	assert.Equal(t, 409, status)
	assert.Contains(t, body, "CONFLICT")

	status, _ = do(t, app, "PUT", "/api/users/77", `{"full_name":"Ghost"}`)
	assert.Equal(t, 404, status)

	status, _ = do(t, app, "DELETE", "/api/users/1", "")
	assert.Equal(t, 200, status)
	status, _ = do(t, app, "DELETE", "/api/users/1", "")
	assert.Equal(t, 404, status)
}
