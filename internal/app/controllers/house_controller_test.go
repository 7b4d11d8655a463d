package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindHouseRequest(t *testing.T, body string) (HouseRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/houses", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req HouseRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestHouseRequestAcceptsZeroCoordinates(t *testing.T) {
	req, err := bindHouseRequest(t,
		`{"address":"Null Island","area_id":1,"longitude":0,"latitude":0}`)
	require.NoError(t, err)

	assert.Equal(t, 0.0, *req.Longitude)
	assert.Equal(t, 0.0, *req.Latitude)
}

func TestHouseRequestRequiresCoordinates(t *testing.T) {
	_, err := bindHouseRequest(t,
		`{"address":"14 Lake Road","area_id":1,"latitude":18.5204}`)
	assert.Error(t, err)
}
