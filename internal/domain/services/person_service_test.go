package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePersonRequiresExistingHouse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPersonService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)

	person := &models.Person{
		Name:         "Ravi",
		MobileNumber: "9876543210",
		Email:        "ravi@example.com",
		Gender:       models.GenderMale,
		HouseID:      42,
	}
	assert.ErrorIs(t, svc.CreatePerson(asPrincipal(admin), person), ErrHouseNotFound)
}

func TestCreatePersonRequiresHouseOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPersonService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	owner := createTestUser(t, db, "owner", models.RoleTeamMember)
	intruder := createTestUser(t, db, "intruder", models.RoleTeamMember)
	house := createTestHouse(t, db, area.ID, team.ID, owner.ID, time.Now())

	person := &models.Person{
		Name:         "Ravi",
		MobileNumber: "9876543210",
		Email:        "ravi@example.com",
		Gender:       models.GenderMale,
		HouseID:      house.ID,
	}
	assert.ErrorIs(t, svc.CreatePerson(asPrincipal(intruder), person), ErrNotHouseOwner)

	// the house submitter may record residents, and the record carries them
	// as submitter
	require.NoError(t, svc.CreatePerson(asPrincipal(owner), person))
	assert.Equal(t, owner.ID, person.SubmittedByID)
	assert.False(t, person.SubmissionDate.IsZero())

	// admins may record residents against any house
	second := &models.Person{
		Name:         "Meera",
		MobileNumber: "9876500000",
		Email:        "meera@example.com",
		Gender:       models.GenderFemale,
		HouseID:      house.ID,
	}
	require.NoError(t, svc.CreatePerson(asPrincipal(admin), second))
	assert.Equal(t, admin.ID, second.SubmittedByID)
}

func TestUpdatePersonOwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPersonService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	owner := createTestUser(t, db, "owner", models.RoleTeamMember)
	intruder := createTestUser(t, db, "intruder", models.RoleTeamMember)
	house := createTestHouse(t, db, area.ID, team.ID, owner.ID, time.Now())
	person := createTestPerson(t, db, house.ID, owner.ID, models.GenderMale, time.Now())

	_, err := svc.UpdatePerson(asPrincipal(intruder), person.ID, map[string]interface{}{"name": "hijacked"})
	assert.ErrorIs(t, err, ErrNotPersonOwner)

	var reloaded models.Person
	require.NoError(t, db.First(&reloaded, person.ID).Error)
	assert.Equal(t, "test person", reloaded.Name)

	updated, err := svc.UpdatePerson(asPrincipal(owner), person.ID, map[string]interface{}{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestDeletePersonOwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPersonService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	owner := createTestUser(t, db, "owner", models.RoleTeamMember)
	intruder := createTestUser(t, db, "intruder", models.RoleTeamMember)
	house := createTestHouse(t, db, area.ID, team.ID, owner.ID, time.Now())
	person := createTestPerson(t, db, house.ID, owner.ID, models.GenderMale, time.Now())

	assert.ErrorIs(t, svc.DeletePerson(asPrincipal(intruder), person.ID), ErrNotPersonOwner)
	assert.NoError(t, svc.DeletePerson(asPrincipal(admin), person.ID))

	_, err := svc.GetPersonByID(person.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestGetAllPeopleFiltersByGender(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPersonService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")
	house := createTestHouse(t, db, area.ID, team.ID, admin.ID, time.Now())

	createTestPerson(t, db, house.ID, admin.ID, models.GenderMale, time.Now())
	createTestPerson(t, db, house.ID, admin.ID, models.GenderFemale, time.Now())
	createTestPerson(t, db, house.ID, admin.ID, models.GenderFemale, time.Now())

	people, _, err := svc.GetAllPeople(url.Values{"gender": {models.GenderFemale}})
	require.NoError(t, err)
	assert.Len(t, people, 2)
}

func TestGetAllPeopleResolvesHouseAddress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPersonService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")
	house := createTestHouse(t, db, area.ID, team.ID, admin.ID, time.Now())
	createTestPerson(t, db, house.ID, admin.ID, models.GenderMale, time.Now())

	people, _, err := svc.GetAllPeople(url.Values{"select": {"name,gender"}})
	require.NoError(t, err)
	require.Len(t, people, 1)
	require.NotNil(t, people[0].House)
	assert.Equal(t, "test address", people[0].House.Address)
}
