package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	helper "evsu_library_backend/internals/helpers"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = helper.LocalRequestID
)

// RequestContext: Request-ID + timeout guard pada UserContext + timing.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		if dur := time.Since(start); dur > timeout/2 {
			log.Warnf("[REQ] id=%s %s %s slow dur=%s", id, c.Method(), c.OriginalURL(), dur)
		}
		return err
	}
}
