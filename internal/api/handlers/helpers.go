package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func GetUserEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("user_email").(string)
	return email
}
