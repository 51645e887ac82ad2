package handlers

import (
	"errors"
	"log"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/sheetcal/internal/service"
	"github.com/maheshrc27/sheetcal/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{s: s}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand slug required",
		})
	}

	posts, err := h.s.List(c.Context(), brand)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand slug required",
		})
	}

	var form transfer.PostForm
	if err := c.BodyParser(&form); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.Create(c.Context(), brand, &form)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand slug required",
		})
	}

	var upd transfer.PostUpdate
	if err := c.BodyParser(&upd); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.Update(c.Context(), brand, c.Params("id"), &upd)
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

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand slug required",
		})
	}

	deleted, err := h.s.Delete(c.Context(), brand, c.Params("id"))
	if err != nil {
		return postError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	log.Printf("Post %s deleted from brand %s by %s", c.Params("id"), brand, GetUserEmail(c))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// postError maps service errors onto HTTP statuses: unknown brand is 404,
// bad input is 400, anything else (the Sheets API failing, mostly) is 500
// with the error surfaced as-is.
func postError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrBrandNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
