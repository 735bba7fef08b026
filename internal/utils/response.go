package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the uniform error envelope; handlers never leak raw provider
// payloads or internal error chains through it.
type ErrorBody struct {
	Error string `json:"error"`
}

// ResultsResponse wraps list-shaped success payloads under a "results" key.
func ResultsResponse(c *fiber.Ctx, code int, results interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"results": results,
	})
}

// MessageResponse reports a successful mutation with no payload.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// JSONResponse sends an entity payload as-is.
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ErrorResponse sends the error envelope.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{Error: message})
}
