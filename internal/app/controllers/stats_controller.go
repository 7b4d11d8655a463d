package controllers

import (
	"errors"

	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/domain/services/container"
	"github.com/KCP2005/date-collection/internal/error/code"
	"github.com/KCP2005/date-collection/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceStatsController defines the stats controller interface
type InterfaceStatsController interface {
	GetSummary()
	GetByTeam()
	GetByArea()
	GetByTime()
}

// StatsController handles rollup statistics requests
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc returns a gin handler dispatching to the stats controller
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "summary":
			controller.GetSummary()
		case "byTeam":
			controller.GetByTeam()
		case "byArea":
			controller.GetByArea()
		case "byTime":
			controller.GetByTime()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// statsError maps service failures to response codes
func (c *StatsController) statsError(err error) {
	if errors.Is(err, services.ErrInvalidQuery) {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
		return
	}
	response.Fail(c.Ctx, code.ErrDatabase)
}

// 1. GetSummary returns overall survey totals
// @Summary Survey totals
// @Description Totals, averages and gender distribution over the scoped submissions
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param area query int false "Scope to an area ID"
// @Param team query int false "Scope to a team ID"
// @Param startDate query string false "Scope start, YYYY-MM-DD"
// @Param endDate query string false "Scope end, YYYY-MM-DD"
// @Success 200 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /stats/summary [get]
func (c *StatsController) GetSummary() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	summary, err := statsService.GetSummary(c.Ctx.Request.URL.Query())
	if err != nil {
		c.statsError(err)
		return
	}

	response.Success(c.Ctx, summary)
}

// 2. GetByTeam returns per-team submission counts
// @Summary Per-team statistics
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param area query int false "Scope to an area ID"
// @Param startDate query string false "Scope start, YYYY-MM-DD"
// @Param endDate query string false "Scope end, YYYY-MM-DD"
// @Success 200 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /stats/by-team [get]
func (c *StatsController) GetByTeam() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetStatsByTeam(c.Ctx.Request.URL.Query())
	if err != nil {
		c.statsError(err)
		return
	}

	response.Success(c.Ctx, stats)
}

// 3. GetByArea returns per-area submission counts
// @Summary Per-area statistics
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param team query int false "Scope to a team ID"
// @Param startDate query string false "Scope start, YYYY-MM-DD"
// @Param endDate query string false "Scope end, YYYY-MM-DD"
// @Success 200 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /stats/by-area [get]
func (c *StatsController) GetByArea() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetStatsByArea(c.Ctx.Request.URL.Query())
	if err != nil {
		c.statsError(err)
		return
	}

	response.Success(c.Ctx, stats)
}

// 4. GetByTime returns day-bucketed submission counts
// @Summary Per-day statistics
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param area query int false "Scope to an area ID"
// @Param team query int false "Scope to a team ID"
// @Param startDate query string false "Scope start, YYYY-MM-DD"
// @Param endDate query string false "Scope end, YYYY-MM-DD"
// @Success 200 {object} response.ItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /stats/by-time [get]
func (c *StatsController) GetByTime() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetStatsByTime(c.Ctx.Request.URL.Query())
	if err != nil {
		c.statsError(err)
		return
	}

	response.Success(c.Ctx, stats)
}
