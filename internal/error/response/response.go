package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KCP2005/date-collection/internal/domain/query"
	"github.com/KCP2005/date-collection/internal/error/code"
)

// ListResponse is the envelope of every paginated listing
type ListResponse struct {
	Success    bool             `json:"success"`
	Count      int              `json:"count"`
	Pagination query.Pagination `json:"pagination"`
	Data       interface{}      `json:"data"`
}

// ItemResponse is the envelope of single-item and mutation results
type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope of every failure
type ErrorResponse struct {
	Message string `json:"message"`
}

// List writes a paginated listing response
func List(c *gin.Context, count int, pagination query.Pagination, data interface{}) {
	c.JSON(http.StatusOK, ListResponse{
		Success:    true,
		Count:      count,
		Pagination: pagination,
		Data:       data,
	})
}

// Success writes a single-item success response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, ItemResponse{Success: true, Data: data})
}

// Created writes a creation success response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, ItemResponse{Success: true, Data: data})
}

// Deleted writes a deletion success response with an empty payload
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, ItemResponse{Success: true, Data: gin.H{}})
}

// Fail writes the failure mapped from an error code
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Message: code.GetMessage(errorCode)})
}

// FailWithMessage writes a failure with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Message: message})
}

// AbortWithCode writes the failure mapped from an error code and stops
// the handler chain
func AbortWithCode(c *gin.Context, errorCode int) {
	c.AbortWithStatusJSON(code.GetStatus(errorCode), ErrorResponse{Message: code.GetMessage(errorCode)})
}

// ParamError writes a validation failure
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message)
}

// ServerError writes a generic storage/unknown failure carrying the error text
func ServerError(c *gin.Context, err error) {
	FailWithMessage(c, code.ErrUnknown, err.Error())
}
