package controllers

import (
	"errors"

	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/domain/services/container"
	"github.com/KCP2005/date-collection/internal/error/code"
	"github.com/KCP2005/date-collection/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController defines the auth controller interface
type InterfaceAuthController interface {
	Register()
	Login()
	Logout()
	Me()
}

// AuthController handles registration, login and session introspection
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Patil"`
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,oneof=admin team_member" example:"team_member"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// HandleAuthFunc returns a gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "me":
			controller.Me()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. Register creates a new account and returns a token
// @Summary Register a new account
// @Description Create a user account and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Account details"
// @Success 201 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			response.Fail(c.Ctx, code.ErrUserAlreadyExists)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Created(c.Ctx, result)
}

// 2. Login checks credentials and returns a token
// @Summary Log in
// @Description Exchange credentials for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidCredentials)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, result)
}

// 3. Logout revokes the caller's token
// @Summary Log out
// @Description Revoke the presented token for the rest of its lifetime
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout() {
	tokenString := c.Ctx.GetString("token")
	if tokenString == "" {
		response.Fail(c.Ctx, code.ErrTokenInvalid)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	if err := jwtService.Logout(tokenString); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "logout failed: "+err.Error())
		return
	}

	response.Success(c.Ctx, gin.H{})
}

// 4. Me returns the authenticated account
// @Summary Current account
// @Description Return the account behind the presented token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me() {
	principal := currentPrincipal(c.Ctx)

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(principal.UserID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, user)
}
