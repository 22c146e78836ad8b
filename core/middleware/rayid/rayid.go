// Package rayid tags every request with a unique id for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-ID"

// Local is the fiber locals key the id is stored under; logger.WithRayID
// reads it from there.
const Local = "ray_id"

// New returns middleware that assigns each request a ray id, stores it in
// the request locals and echoes it in the response header. An id already
// present on the request wins, so traces survive upstream proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(Local, rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
