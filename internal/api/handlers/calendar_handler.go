package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/sheetcal/internal/service"
	"github.com/maheshrc27/sheetcal/internal/transfer"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: s}
}

func (h *CalendarHandler) GetMonthView(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand slug required",
		})
	}

	filter := transfer.PostFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	view, err := h.s.MonthView(c.Context(), brand, c.Query("month"), filter)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// ReschedulePost is the drag-and-drop endpoint: the drop target's date key
// comes in the body and turns into a date-only partial update.
func (h *CalendarHandler) ReschedulePost(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand slug required",
		})
	}

	var req transfer.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.Reschedule(c.Context(), brand, c.Params("id"), req.Date)
	if err != nil {
		return postError(c, err)
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
