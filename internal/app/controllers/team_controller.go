package controllers

import (
	"errors"

	"github.com/KCP2005/date-collection/internal/domain/models"
	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/domain/services/container"
	"github.com/KCP2005/date-collection/internal/error/code"
	"github.com/KCP2005/date-collection/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceTeamController defines the team controller interface
type InterfaceTeamController interface {
	GetTeams()
	GetTeam()
	CreateTeam()
	UpdateTeam()
	DeleteTeam()
	AddMember()
	RemoveMember()
}

// TeamController handles field-team requests
type TeamController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewTeamController(ctx *gin.Context, container *container.ServiceContainer) *TeamController {
	return &TeamController{
		Ctx:       ctx,
		Container: container,
	}
}

// TeamRequest is the team creation payload
type TeamRequest struct {
	Name string `json:"name" binding:"required" example:"North Ward Crew"`
}

// TeamMemberRequest is the membership change payload
type TeamMemberRequest struct {
	UserID       uint `json:"user_id" binding:"required" example:"9"`
	IsMainMember bool `json:"is_main_member" example:"true"`
}

// HandleTeamFunc returns a gin handler dispatching to the team controller
func HandleTeamFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTeamController(ctx, container)

		switch method {
		case "getTeams":
			controller.GetTeams()
		case "getTeam":
			controller.GetTeam()
		case "createTeam":
			controller.CreateTeam()
		case "updateTeam":
			controller.UpdateTeam()
		case "deleteTeam":
			controller.DeleteTeam()
		case "addMember":
			controller.AddMember()
		case "removeMember":
			controller.RemoveMember()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// teamError maps service failures to response codes
func (c *TeamController) teamError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuery):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
	case errors.Is(err, services.ErrTeamNotFound):
		response.Fail(c.Ctx, code.ErrTeamNotFound)
	case errors.Is(err, services.ErrUserNotFound):
		response.Fail(c.Ctx, code.ErrUserNotFound)
	default:
		response.Fail(c.Ctx, code.ErrDatabase)
	}
}

// 1. GetTeams lists teams with filtering, sorting and pagination
// @Summary List teams
// @Tags Team
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 25"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /teams [get]
func (c *TeamController) GetTeams() {
	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	teams, pagination, err := teamService.GetAllTeams(c.Ctx.Request.URL.Query())
	if err != nil {
		c.teamError(err)
		return
	}

	response.List(c.Ctx, len(teams), pagination, teams)
}

// 2. GetTeam returns a single team with its main members
// @Summary Get a team
// @Tags Team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [get]
func (c *TeamController) GetTeam() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	team, err := teamService.GetTeamByID(id)
	if err != nil {
		c.teamError(err)
		return
	}

	response.Success(c.Ctx, team)
}

// 3. CreateTeam creates a new team
// @Summary Create a team
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team body TeamRequest true "Team details"
// @Success 201 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /teams [post]
func (c *TeamController) CreateTeam() {
	var req TeamRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	team := &models.Team{Name: req.Name}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	if err := teamService.CreateTeam(currentPrincipal(c.Ctx), team); err != nil {
		c.teamError(err)
		return
	}

	response.Created(c.Ctx, team)
}

// 4. UpdateTeam patches an existing team
// @Summary Update a team
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param team body TeamRequest true "Fields to change"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [put]
func (c *TeamController) UpdateTeam() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req TeamRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	updates := map[string]interface{}{"name": req.Name}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	team, err := teamService.UpdateTeam(id, updates)
	if err != nil {
		c.teamError(err)
		return
	}

	response.Success(c.Ctx, team)
}

// 5. DeleteTeam removes a team and its membership links
// @Summary Delete a team
// @Tags Team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [delete]
func (c *TeamController) DeleteTeam() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	if err := teamService.DeleteTeam(id); err != nil {
		c.teamError(err)
		return
	}

	response.Deleted(c.Ctx)
}

// 6. AddMember assigns a user to the team
// @Summary Add a team member
// @Description Assign a user to the team, optionally as a main member
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param member body TeamMemberRequest true "Membership details"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id}/members [post]
func (c *TeamController) AddMember() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req TeamMemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrMemberRequired, "invalid request body: "+err.Error())
		return
	}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	team, err := teamService.AddMember(id, req.UserID, req.IsMainMember)
	if err != nil {
		c.teamError(err)
		return
	}

	response.Success(c.Ctx, team)
}

// 7. RemoveMember detaches a user from the team
// @Summary Remove a team member
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param member body TeamMemberRequest true "Membership details"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id}/members [delete]
func (c *TeamController) RemoveMember() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req TeamMemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrMemberRequired, "invalid request body: "+err.Error())
		return
	}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	team, err := teamService.RemoveMember(id, req.UserID)
	if err != nil {
		c.teamError(err)
		return
	}

	response.Success(c.Ctx, team)
}
