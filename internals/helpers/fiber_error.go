package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// FiberErrorHandler mengubah error yang lolos dari handler (404 route, body terlalu besar,
// panic yang di-recover) menjadi envelope JSON standar.
// Selain *fiber.Error, pesan asli tidak dibocorkan ke client.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Errorf("[HTTP] unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}
