package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// UserHandler kullanıcı CRUD uçları için handler.
type UserHandler struct {
	userService services.IUserService
}

// NewUserHandler yeni bir UserHandler örneği oluşturur.
func NewUserHandler() *UserHandler {
	return &UserHandler{userService: services.NewUserService()}
}

// CreateUser (POST /api/users)
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req validations.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.UserContext(), req.Email, req.FullName, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User Created",
		"status":  "success",
		"data":    user,
	})
}

// GetUsers (GET /api/users)
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetUsers(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrUsersNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": users})
}

// GetUserByID (GET /api/users/:id)
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User found",
		"status":  "success",
		"data":    user,
	})
}

// UpdateUserByID (PATCH /api/users/:id)
func (h *UserHandler) UpdateUserByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	var req validations.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.UserContext(), id, services.UserUpdates{
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrUsernameTaken):
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User updated",
		"status":  "success",
		"data":    user,
	})
}

// DeleteUserByID (DELETE /api/users/:id)
func (h *UserHandler) DeleteUserByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted", "status": "success"})
}
