package controllers

import (
	"strconv"

	"github.com/KCP2005/date-collection/internal/app/middleware"
	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/error/response"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric path parameter, writing a 400 when malformed.
// The boolean reports whether the handler may continue.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		response.ParamError(ctx, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// currentPrincipal reads the authenticated caller set by the auth
// middleware. Routes behind Authenticate always have one.
func currentPrincipal(ctx *gin.Context) services.Principal {
	principal, _ := middleware.GetPrincipal(ctx)
	return principal
}
