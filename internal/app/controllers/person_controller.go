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

// InterfacePersonController defines the person controller interface
type InterfacePersonController interface {
	GetPeople()
	GetPerson()
	CreatePerson()
	UpdatePerson()
	DeletePerson()
}

// PersonController handles resident record requests
type PersonController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewPersonController(ctx *gin.Context, container *container.ServiceContainer) *PersonController {
	return &PersonController{
		Ctx:       ctx,
		Container: container,
	}
}

// PersonRequest is the person creation payload
type PersonRequest struct {
	Name         string `json:"name" binding:"required" example:"Ravi Kumar"`
	MobileNumber string `json:"mobile_number" binding:"required,len=10,numeric" example:"9876543210"`
	Email        string `json:"email" binding:"required,email" example:"ravi@example.com"`
	Gender       string `json:"gender" binding:"required,oneof=Male Female Other" example:"Male"`
	HouseID      uint   `json:"house_id" binding:"required" example:"7"`
}

// PersonUpdateRequest is the person patch payload
type PersonUpdateRequest struct {
	Name         string `json:"name" example:"Ravi Kumar"`
	MobileNumber string `json:"mobile_number" binding:"omitempty,len=10,numeric" example:"9876543210"`
	Email        string `json:"email" binding:"omitempty,email" example:"ravi@example.com"`
	Gender       string `json:"gender" binding:"omitempty,oneof=Male Female Other" example:"Male"`
}

// HandlePersonFunc returns a gin handler dispatching to the person controller
func HandlePersonFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPersonController(ctx, container)

		switch method {
		case "getPeople":
			controller.GetPeople()
		case "getPerson":
			controller.GetPerson()
		case "createPerson":
			controller.CreatePerson()
		case "updatePerson":
			controller.UpdatePerson()
		case "deletePerson":
			controller.DeletePerson()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// personError maps service failures to response codes
func (c *PersonController) personError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuery):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
	case errors.Is(err, services.ErrPersonNotFound):
		response.Fail(c.Ctx, code.ErrPersonNotFound)
	case errors.Is(err, services.ErrNotPersonOwner):
		response.Fail(c.Ctx, code.ErrNotPersonOwner)
	case errors.Is(err, services.ErrHouseNotFound):
		response.Fail(c.Ctx, code.ErrHouseNotFound)
	case errors.Is(err, services.ErrNotHouseOwner):
		response.Fail(c.Ctx, code.ErrNotHouseOwner)
	default:
		response.Fail(c.Ctx, code.ErrDatabase)
	}
}

// 1. GetPeople lists people with filtering, sorting and pagination
// @Summary List people
// @Description List residents; supports field filters with [gt]/[gte]/[lt]/[lte]/[in] operators, select, sort, page and limit
// @Tags Person
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 25"
// @Param gender query string false "Filter by gender"
// @Param house query int false "Filter by house ID"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /people [get]
func (c *PersonController) GetPeople() {
	personService := c.Container.GetService("person").(services.InterfacePersonService)
	people, pagination, err := personService.GetAllPeople(c.Ctx.Request.URL.Query())
	if err != nil {
		c.personError(err)
		return
	}

	response.List(c.Ctx, len(people), pagination, people)
}

// 2. GetPerson returns a single person
// @Summary Get a person
// @Tags Person
// @Produce json
// @Security BearerAuth
// @Param id path int true "Person ID"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /people/{id} [get]
func (c *PersonController) GetPerson() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	person, err := personService.GetPersonByID(id)
	if err != nil {
		c.personError(err)
		return
	}

	response.Success(c.Ctx, person)
}

// 3. CreatePerson records a resident against a house the caller owns
// @Summary Create a person
// @Tags Person
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param person body PersonRequest true "Person details"
// @Success 201 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /people [post]
func (c *PersonController) CreatePerson() {
	var req PersonRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	person := &models.Person{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Gender:       req.Gender,
		HouseID:      req.HouseID,
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if err := personService.CreatePerson(currentPrincipal(c.Ctx), person); err != nil {
		c.personError(err)
		return
	}

	response.Created(c.Ctx, person)
}

// 4. UpdatePerson patches a person submitted by the caller
// @Summary Update a person
// @Tags Person
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Person ID"
// @Param person body PersonUpdateRequest true "Fields to change"
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /people/{id} [put]
func (c *PersonController) UpdatePerson() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req PersonUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.MobileNumber != "" {
		updates["mobile_number"] = req.MobileNumber
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	person, err := personService.UpdatePerson(currentPrincipal(c.Ctx), id, updates)
	if err != nil {
		c.personError(err)
		return
	}

	response.Success(c.Ctx, person)
}

// 5. DeletePerson removes a person submitted by the caller
// @Summary Delete a person
// @Tags Person
// @Produce json
// @Security BearerAuth
// @Param id path int true "Person ID"
// @Success 200 {object} response.ItemResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /people/{id} [delete]
func (c *PersonController) DeletePerson() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if err := personService.DeletePerson(currentPrincipal(c.Ctx), id); err != nil {
		c.personError(err)
		return
	}

	response.Deleted(c.Ctx)
}
