package handler

import "github.com/gofiber/fiber/v2"

// JWT numeric claims come back as float64 from jwt.MapClaims.

func callerID(c *fiber.Ctx) uint {
	if v, ok := c.Locals("user_id").(float64); ok {
		return uint(v)
	}
	return 0
}

func callerRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return v
	}
	return ""
}

func callerCompanyID(c *fiber.Ctx) *uint {
	if v, ok := c.Locals("company_id").(float64); ok {
		id := uint(v)
		return &id
	}
	return nil
}
