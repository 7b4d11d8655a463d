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

// InterfaceHouseController defines the house controller interface
type InterfaceHouseController interface {
	GetHouses()
	GetHouse()
	CreateHouse()
	UpdateHouse()
	DeleteHouse()
}

// HouseController handles house submission requests
type HouseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewHouseController(ctx *gin.Context, container *container.ServiceContainer) *HouseController {
	return &HouseController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseRequest is the house creation payload
type HouseRequest struct {
	Address string `json:"address" binding:"required" example:"14 Lake Road"`
	AreaID  uint   `json:"area_id" binding:"required" example:"3"`
	// pointers so a coordinate of exactly 0 still satisfies required
	Longitude *float64 `json:"longitude" binding:"required" example:"73.8567"`
	Latitude  *float64 `json:"latitude" binding:"required" example:"18.5204"`
	// TeamID is honored for admins only; others submit for their own team
	TeamID uint `json:"team_id" example:"2"`
}

// HouseUpdateRequest is the house patch payload
type HouseUpdateRequest struct {
	Address   string   `json:"address" example:"14 Lake Road"`
	AreaID    uint     `json:"area_id" example:"3"`
	Longitude *float64 `json:"longitude" example:"73.8567"`
	Latitude  *float64 `json:"latitude" example:"18.5204"`
}

// HandleHouseFunc returns a gin handler dispatching to the house controller
func HandleHouseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseController(ctx, container)

		switch method {
		case "getHouses":
			controller.GetHouses()
		case "getHouse":
			controller.GetHouse()
		case "createHouse":
			controller.CreateHouse()
		case "updateHouse":
			controller.UpdateHouse()
		case "deleteHouse":
			controller.DeleteHouse()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// houseError maps service failures to response codes
func (c *HouseController) houseError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuery):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
	case errors.Is(err, services.ErrHouseNotFound):
		response.Fail(c.Ctx, code.ErrHouseNotFound)
	case errors.Is(err, services.ErrNotHouseOwner):
		response.Fail(c.Ctx, code.ErrNotHouseOwner)
	case errors.Is(err, services.ErrAreaNotFound):
		response.Fail(c.Ctx, code.ErrAreaNotFound)
	case errors.Is(err, services.ErrTeamRequired):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
	default:
		response.Fail(c.Ctx, code.ErrDatabase)
	}
}

// 1. GetHouses lists houses with filtering, sorting and pagination
// @Summary List houses
// @Description List houses; supports field filters with [gt]/[gte]/[lt]/[lte]/[in] operators, select, sort, page and limit
// @Tags House
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 25"
// @Param area query int false "Filter by area ID"
// @Param team query int false "Filter by team ID"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /houses [get]
func (c *HouseController) GetHouses() {
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	houses, pagination, err := houseService.GetAllHouses(c.Ctx.Request.URL.Query())
	if err != nil {
		c.houseError(err)
		return
	}

	response.List(c.Ctx, len(houses), pagination, houses)
}

// 2. GetHouse returns a single house
// @Summary Get a house
// @Tags House
// @Produce json
// @Security BearerAuth
// @Param id path int true "House ID"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /houses/{id} [get]
func (c *HouseController) GetHouse() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.GetHouseByID(id)
	if err != nil {
		c.houseError(err)
		return
	}

	response.Success(c.Ctx, house)
}

// 3. CreateHouse records a new house submission
// @Summary Create a house
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house body HouseRequest true "House details"
// @Success 201 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /houses [post]
func (c *HouseController) CreateHouse() {
	var req HouseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	house := &models.House{
		Address:   req.Address,
		AreaID:    req.AreaID,
		Longitude: *req.Longitude,
		Latitude:  *req.Latitude,
		TeamID:    req.TeamID,
	}

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if err := houseService.CreateHouse(currentPrincipal(c.Ctx), house); err != nil {
		c.houseError(err)
		return
	}

	response.Created(c.Ctx, house)
}

// 4. UpdateHouse patches a house owned by the caller
// @Summary Update a house
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "House ID"
// @Param house body HouseUpdateRequest true "Fields to change"
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /houses/{id} [put]
func (c *HouseController) UpdateHouse() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req HouseUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.AreaID != 0 {
		updates["area_id"] = req.AreaID
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.UpdateHouse(currentPrincipal(c.Ctx), id, updates)
	if err != nil {
		c.houseError(err)
		return
	}

	response.Success(c.Ctx, house)
}

// 5. DeleteHouse removes a house owned by the caller
// @Summary Delete a house
// @Tags House
// @Produce json
// @Security BearerAuth
// @Param id path int true "House ID"
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /houses/{id} [delete]
func (c *HouseController) DeleteHouse() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if err := houseService.DeleteHouse(currentPrincipal(c.Ctx), id); err != nil {
		c.houseError(err)
		return
	}

	response.Deleted(c.Ctx)
}
