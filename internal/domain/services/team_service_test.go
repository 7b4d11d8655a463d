package services

import (
	"testing"

	"github.com/KCP2005/date-collection/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamRecordsCreator(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := &models.Team{Name: "crew"}
	require.NoError(t, svc.CreateTeam(asPrincipal(admin), team))

	assert.Equal(t, admin.ID, team.CreatedByID)
}

func TestAddMemberAssignsUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	worker := createTestUser(t, db, "worker", models.RoleTeamMember)

	result, err := svc.AddMember(team.ID, worker.ID, false)
	require.NoError(t, err)
	assert.Empty(t, result.MainMembers)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, worker.ID).Error)
	require.NotNil(t, reloaded.TeamID)
	assert.Equal(t, team.ID, *reloaded.TeamID)
	assert.False(t, reloaded.IsMainMember)
}

func TestAddMainMemberIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	worker := createTestUser(t, db, "worker", models.RoleTeamMember)

	result, err := svc.AddMember(team.ID, worker.ID, true)
	require.NoError(t, err)
	assert.Len(t, result.MainMembers, 1)

	// a second call must not duplicate the lead entry
	result, err = svc.AddMember(team.ID, worker.ID, true)
	require.NoError(t, err)
	assert.Len(t, result.MainMembers, 1)
}

func TestRemoveMemberClearsAssignment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	worker := createTestUser(t, db, "worker", models.RoleTeamMember)

	_, err := svc.AddMember(team.ID, worker.ID, true)
	require.NoError(t, err)

	result, err := svc.RemoveMember(team.ID, worker.ID)
	require.NoError(t, err)
	assert.Empty(t, result.MainMembers)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, worker.ID).Error)
	assert.Nil(t, reloaded.TeamID)
	assert.False(t, reloaded.IsMainMember)
}

func TestRemoveNonLeadMemberIsHarmless(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	worker := createTestUser(t, db, "worker", models.RoleTeamMember)

	_, err := svc.AddMember(team.ID, worker.ID, false)
	require.NoError(t, err)

	result, err := svc.RemoveMember(team.ID, worker.ID)
	require.NoError(t, err)
	assert.Empty(t, result.MainMembers)
}

func TestMembershipWithMissingEntities(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)

	_, err := svc.AddMember(999, admin.ID, false)
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.AddMember(team.ID, 999, false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteTeamClearsLeadLinks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	worker := createTestUser(t, db, "worker", models.RoleTeamMember)

	_, err := svc.AddMember(team.ID, worker.ID, true)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(team.ID))

	_, err = svc.GetTeamByID(team.ID)
	assert.ErrorIs(t, err, ErrTeamNotFound)

	var links int64
	require.NoError(t, db.Table("team_main_members").Where("team_id = ?", team.ID).Count(&links).Error)
	assert.Zero(t, links)
}
