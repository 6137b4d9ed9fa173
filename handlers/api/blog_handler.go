package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/pkg/queryparams"
	"wavetags.link/services"
	"wavetags.link/validations"
)

// BlogHandler blog uçları için handler.
type BlogHandler struct {
	blogService services.IBlogService
}

// NewBlogHandler yeni bir BlogHandler örneği oluşturur.
func NewBlogHandler() *BlogHandler {
	return &BlogHandler{blogService: services.NewBlogService()}
}

// CreateBlog (POST /api/blogs)
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	var req validations.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	blog, err := h.blogService.CreateBlog(c.UserContext(), req.CardID, req.Heading, req.Content, req.Description, req.CoverImage)
	if err != nil {
		if errors.Is(err, services.ErrBlogExists) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Blog Created",
		"status":  "success",
		"data":    blog,
	})
}

// ReadBlog (GET /api/blogs/:blogId)
func (h *BlogHandler) ReadBlog(c *fiber.Ctx) error {
	id, err := paramID(c, "blogId", "Invalid blog ID")
	if err != nil {
		return err
	}

	blog, err := h.blogService.GetBlogByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Blog found",
		"status":  "success",
		"data":    blog,
	})
}

// ReadAllBlogs (GET /api/blogs)
func (h *BlogHandler) ReadAllBlogs(c *fiber.Ctx) error {
	if c.Query("page") != "" || c.Query("per_page") != "" {
		var params queryparams.ListParams
		if err := c.QueryParser(&params); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
		}
		result, err := h.blogService.GetBlogsPaginated(c.UserContext(), params)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
			"data":   result.Data,
			"meta":   result.Meta,
		})
	}

	blogs, err := h.blogService.GetBlogs(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrBlogsNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": blogs})
}

// UpdateBlog (PATCH /api/blogs/:blogId)
func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	id, err := paramID(c, "blogId", "Invalid blog ID")
	if err != nil {
		return err
	}

	var req validations.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	blog, err := h.blogService.UpdateBlog(c.UserContext(), id, services.BlogUpdates{
		Heading:     req.Heading,
		Content:     req.Content,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBlogNotFound):
			return fiber.NewError(fiber.StatusNotFound, "No information found for the provided Blog")
		case errors.Is(err, services.ErrBlogExists):
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Blog updated",
		"status":  "success",
		"data":    blog,
	})
}

// DeleteBlog (DELETE /api/blogs/:blogId)
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	id, err := paramID(c, "blogId", "Invalid blog ID")
	if err != nil {
		return err
	}

	if err := h.blogService.DeleteBlog(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Blog deleted", "status": "success"})
}
