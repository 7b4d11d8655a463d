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

// InterfaceAreaController defines the area controller interface
type InterfaceAreaController interface {
	GetAreas()
	GetArea()
	CreateArea()
	UpdateArea()
	DeleteArea()
}

// AreaController handles survey-area requests
type AreaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewAreaController(ctx *gin.Context, container *container.ServiceContainer) *AreaController {
	return &AreaController{
		Ctx:       ctx,
		Container: container,
	}
}

// AreaRequest is the area creation payload
type AreaRequest struct {
	Name        string      `json:"name" binding:"required" example:"Ward 12 North"`
	Description string      `json:"description" example:"Northern half of ward 12"`
	Boundaries  [][]float64 `json:"boundaries"`
}

// AreaUpdateRequest is the area patch payload
type AreaUpdateRequest struct {
	Name        string      `json:"name" example:"Ward 12 North"`
	Description string      `json:"description" example:"Northern half of ward 12"`
	Boundaries  [][]float64 `json:"boundaries"`
}

// HandleAreaFunc returns a gin handler dispatching to the area controller
func HandleAreaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAreaController(ctx, container)

		switch method {
		case "getAreas":
			controller.GetAreas()
		case "getArea":
			controller.GetArea()
		case "createArea":
			controller.CreateArea()
		case "updateArea":
			controller.UpdateArea()
		case "deleteArea":
			controller.DeleteArea()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// areaError maps service failures to response codes
func (c *AreaController) areaError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuery):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
	case errors.Is(err, services.ErrAreaNotFound):
		response.Fail(c.Ctx, code.ErrAreaNotFound)
	case errors.Is(err, services.ErrAreaNameTaken):
		response.Fail(c.Ctx, code.ErrAreaAlreadyExists)
	case errors.Is(err, services.ErrAreaInUse):
		response.Fail(c.Ctx, code.ErrAreaInUse)
	default:
		response.Fail(c.Ctx, code.ErrDatabase)
	}
}

// 1. GetAreas lists areas with filtering, sorting and pagination
// @Summary List areas
// @Description List survey areas; supports field filters, select, sort, page and limit
// @Tags Area
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 25"
// @Param select query string false "Comma separated fields to return"
// @Param sort query string false "Comma separated sort keys, - prefix for descending"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /areas [get]
func (c *AreaController) GetAreas() {
	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	areas, pagination, err := areaService.GetAllAreas(c.Ctx.Request.URL.Query())
	if err != nil {
		c.areaError(err)
		return
	}

	response.List(c.Ctx, len(areas), pagination, areas)
}

// 2. GetArea returns a single area
// @Summary Get an area
// @Tags Area
// @Produce json
// @Security BearerAuth
// @Param id path int true "Area ID"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /areas/{id} [get]
func (c *AreaController) GetArea() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	area, err := areaService.GetAreaByID(id)
	if err != nil {
		c.areaError(err)
		return
	}

	response.Success(c.Ctx, area)
}

// 3. CreateArea creates a new survey area
// @Summary Create an area
// @Tags Area
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param area body AreaRequest true "Area details"
// @Success 201 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /areas [post]
func (c *AreaController) CreateArea() {
	var req AreaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	area := &models.Area{
		Name:        req.Name,
		Description: req.Description,
		Boundaries:  req.Boundaries,
	}

	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	if err := areaService.CreateArea(area); err != nil {
		c.areaError(err)
		return
	}

	response.Created(c.Ctx, area)
}

// 4. UpdateArea patches an existing area
// @Summary Update an area
// @Tags Area
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Area ID"
// @Param area body AreaUpdateRequest true "Fields to change"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /areas/{id} [put]
func (c *AreaController) UpdateArea() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req AreaUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Boundaries != nil {
		updates["boundaries"] = req.Boundaries
	}

	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	area, err := areaService.UpdateArea(id, updates)
	if err != nil {
		c.areaError(err)
		return
	}

	response.Success(c.Ctx, area)
}

// 5. DeleteArea removes an area with no houses left in it
// @Summary Delete an area
// @Tags Area
// @Produce json
// @Security BearerAuth
// @Param id path int true "Area ID"
// @Success 200 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /areas/{id} [delete]
func (c *AreaController) DeleteArea() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	if err := areaService.DeleteArea(id); err != nil {
		c.areaError(err)
		return
	}

	response.Deleted(c.Ctx)
}
