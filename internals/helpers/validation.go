package helper

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate dipakai bersama oleh semua controller.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// pakai nama json sebagai nama field di pesan error
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationErrors mengubah validator.ValidationErrors → map field → tag.
func ValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		out[fe.Field()] = append(out[fe.Field()], tag)
	}
	return out
}

// ValidationError: langsung tulis response 422 dari error validator.
func ValidationError(c *fiber.Ctx, err error) error {
	return JsonValidationError(c, ValidationErrors(err))
}

// ParseUintParam membaca path param numerik (mis. :id).
func ParseUintParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ParseUintQuery membaca query numerik opsional; nil bila kosong/invalid.
func ParseUintQuery(c *fiber.Ctx, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	u := uint(n)
	return &u
}
