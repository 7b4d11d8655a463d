package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAreaRejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAreaService(db, testConfig())

	require.NoError(t, svc.CreateArea(&models.Area{Name: "Ward 1"}))
	err := svc.CreateArea(&models.Area{Name: "Ward 1"})
	assert.ErrorIs(t, err, ErrAreaNameTaken)
}

func TestUpdateAreaRejectsTakenName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAreaService(db, testConfig())

	createTestArea(t, db, "Ward 1")
	second := createTestArea(t, db, "Ward 2")

	_, err := svc.UpdateArea(second.ID, map[string]interface{}{"name": "Ward 1"})
	assert.ErrorIs(t, err, ErrAreaNameTaken)
}

func TestDeleteAreaRefusedWhileHousesRemain(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAreaService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")
	createTestHouse(t, db, area.ID, team.ID, admin.ID, time.Now())

	assert.ErrorIs(t, svc.DeleteArea(area.ID), ErrAreaInUse)

	require.NoError(t, db.Where("area_id = ?", area.ID).Delete(&models.House{}).Error)
	assert.NoError(t, svc.DeleteArea(area.ID))
}

func TestGetAllAreasRejectsUnknownFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAreaService(db, testConfig())

	_, _, err := svc.GetAllAreas(url.Values{"boundaries": {"x"}})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestGetAllAreasPaginates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAreaService(db, testConfig())

	for _, name := range []string{"A", "B", "C"} {
		createTestArea(t, db, name)
	}

	areas, pagination, err := svc.GetAllAreas(url.Values{"page": {"1"}, "limit": {"2"}})
	require.NoError(t, err)
	assert.Len(t, areas, 2)
	require.NotNil(t, pagination.Next)
	assert.Equal(t, 2, pagination.Next.Page)
	assert.Nil(t, pagination.Prev)
}

func TestGetAreaByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAreaService(db, testConfig())

	_, err := svc.GetAreaByID(99)
	assert.ErrorIs(t, err, ErrAreaNotFound)
}
