package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/sheetcal/internal/service"
)

type BrandHandler struct {
	s service.BrandService
}

func NewBrandHandler(s service.BrandService) *BrandHandler {
	return &BrandHandler{s: s}
}

func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.List())
}
