package utils

import (
	"time"

	"parcel-delivery/middleware"
	"parcel-delivery/types"

	"github.com/gofiber/fiber/v2"
)

const maxLoggedBody = 4096

// EmailFromClaims extracts the verified email from the claims attached by the
// authentication middleware. Returns "" when the route is ungated or the
// provider issued no email claim.
func EmailFromClaims(c *fiber.Ctx) string {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// CreateSanitizedLogEntry builds an audit log entry from the current request.
// Bodies are truncated; headers are not logged at all, so credentials never
// reach the logs table.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	body := string(c.Body())
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}
	respBody := string(c.Response().Body())
	if len(respBody) > maxLoggedBody {
		respBody = respBody[:maxLoggedBody]
	}

	return types.LogEntry{
		Method:       c.Method(),
		URL:          c.OriginalURL(),
		Actor:        EmailFromClaims(c),
		RequestBody:  body,
		ResponseBody: respBody,
		StatusCode:   c.Response().StatusCode(),
		CreatedAt:    time.Now(),
	}
}
