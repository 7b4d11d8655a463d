package controllers

import (
	"errors"

	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/domain/services/container"
	"github.com/KCP2005/date-collection/internal/error/code"
	"github.com/KCP2005/date-collection/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	UpdateUser()
	DeleteUser()
}

// UserController handles account requests
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserUpdateRequest is the account patch payload. Passwords never change
// through this endpoint and roles only change when an admin asks.
type UserUpdateRequest struct {
	Name  string `json:"name" example:"Asha Patil"`
	Email string `json:"email" binding:"omitempty,email" example:"asha@example.com"`
	Role  string `json:"role" binding:"omitempty,oneof=admin team_member" example:"team_member"`
}

// HandleUserFunc returns a gin handler dispatching to the user controller
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// userError maps service failures to response codes
func (c *UserController) userError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuery):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		response.Fail(c.Ctx, code.ErrUserNotFound)
	case errors.Is(err, services.ErrNotAllowed):
		response.Fail(c.Ctx, code.ErrRoleForbidden)
	default:
		response.Fail(c.Ctx, code.ErrDatabase)
	}
}

// 1. GetUsers lists accounts with filtering, sorting and pagination
// @Summary List users
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 25"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, pagination, err := userService.GetAllUsers(c.Ctx.Request.URL.Query())
	if err != nil {
		c.userError(err)
		return
	}

	response.List(c.Ctx, len(users), pagination, users)
}

// 2. GetUser returns a single account
// @Summary Get a user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(id)
	if err != nil {
		c.userError(err)
		return
	}

	response.Success(c.Ctx, user)
}

// 3. UpdateUser patches an account
// @Summary Update a user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body UserUpdateRequest true "Fields to change"
// @Success 200 {object} response.ItemResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req UserUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(currentPrincipal(c.Ctx), id, updates)
	if err != nil {
		c.userError(err)
		return
	}

	response.Success(c.Ctx, user)
}

// 4. DeleteUser removes an account
// @Summary Delete a user
// @Description Admins may delete anyone; others only themselves
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.ItemResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(currentPrincipal(c.Ctx), id); err != nil {
		c.userError(err)
		return
	}

	response.Deleted(c.Ctx)
}
