package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/repository"
	"job-board-service/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url"`
}

func (r updateUserRequest) fields() []repository.UpdateField {
	var fields []repository.UpdateField
	if r.FirstName != nil {
		fields = append(fields, repository.UpdateField{Column: "first_name", Value: *r.FirstName})
	}
	if r.LastName != nil {
		fields = append(fields, repository.UpdateField{Column: "last_name", Value: *r.LastName})
	}
	if r.Email != nil {
		fields = append(fields, repository.UpdateField{Column: "email", Value: *r.Email})
	}
	if r.PhotoURL != nil {
		fields = append(fields, repository.UpdateField{Column: "photo_url", Value: *r.PhotoURL})
	}
	return fields
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}

	tkn, err := h.userService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"token": tkn})
}

// Create handles POST /users. Registration needs no token and answers
// with one.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tkn, err := h.userService.Register(c.Request().Context(), &entity.User{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": tkn})
}

// List handles GET /users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// Get handles GET /users/:username
func (h *UserHandler) Get(c echo.Context) error {
	username := c.Param("username")

	user, err := h.userService.Get(c.Request().Context(), username)
	if err != nil {
		return err
	}
	if user == nil {
		return httperr.NotFound(fmt.Sprintf("No user with username: %s", username))
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Update handles PATCH /users/:username
func (h *UserHandler) Update(c echo.Context) error {
	username := c.Param("username")

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), username, req.fields())
	if err != nil {
		return err
	}
	if user == nil {
		return httperr.NotFound(fmt.Sprintf("No user with username: %s", username))
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Delete handles DELETE /users/:username
func (h *UserHandler) Delete(c echo.Context) error {
	username := c.Param("username")

	deleted, err := h.userService.Delete(c.Request().Context(), username)
	if err != nil {
		return err
	}
	if deleted == "" {
		return httperr.NotFound(fmt.Sprintf("No such user: %s", username))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}
