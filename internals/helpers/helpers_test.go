package helper

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return nil
	})

	cases := []struct {
		query string
		want  Paging
	}{
		{"", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"?page=-1&limit=5", Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"?per_page=1000", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"?page=abc&per_page=xyz", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tc := range cases {
		_, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.query)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestValidationErrorsUsesJSONNames(t *testing.T) {
	type req struct {
		FullName string `json:"full_name" validate:"required"`
		Age      int    `json:"age" validate:"gte=1"`
	}
	err := Validate.Struct(&req{})
	require.Error(t, err)

	fields := ValidationErrors(err)
	assert.Equal(t, []string{"required"}, fields["full_name"])
	assert.Equal(t, []string{"gte=1"}, fields["age"])

	other := ValidationErrors(errors.New("boom"))
	assert.Equal(t, []string{"boom"}, other["_"])
}

func TestJsonEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FiberErrorHandler})
	app.Get("/ok", func(c *fiber.Ctx) error { return JsonOK(c, "", fiber.Map{"a": 1}) })
	app.Get("/conflict", func(c *fiber.Ctx) error { return JsonError(c, fiber.StatusConflict, "taken") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("secret detail") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CONFLICT", body["error_code"])

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, "INTERNAL_ERROR", body["error_code"])
	assert.NotContains(t, body["message"], "secret")

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, resp.Body)["error_code"])
}

func TestParseUint(t *testing.T) {
	app := fiber.New()
	var (
		id    uint
		ok    bool
		query *uint
	)
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, ok = ParseUintParam(c, "id")
		query = ParseUintQuery(c, "user_id")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/12?user_id=7", nil))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)
	require.NotNil(t, query)
	assert.Equal(t, uint(7), *query)

	_, err = app.Test(httptest.NewRequest("GET", "/zero?user_id=-1", nil))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, query)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
