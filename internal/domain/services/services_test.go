package services

import (
	"testing"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/models"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Area{},
		&models.House{},
		&models.Person{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:   "test-secret",
		JWTExpireHours: 1,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password123",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTeam(t *testing.T, db *gorm.DB, name string, createdBy uint) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, CreatedByID: createdBy}
	require.NoError(t, db.Create(team).Error)
	return team
}

func createTestArea(t *testing.T, db *gorm.DB, name string) *models.Area {
	t.Helper()
	area := &models.Area{Name: name}
	require.NoError(t, db.Create(area).Error)
	return area
}

func createTestHouse(t *testing.T, db *gorm.DB, areaID, teamID, submittedBy uint, submitted time.Time) *models.House {
	t.Helper()
	house := &models.House{
		Address:        "test address",
		AreaID:         areaID,
		TeamID:         teamID,
		SubmittedByID:  submittedBy,
		Longitude:      73.85,
		Latitude:       18.52,
		SubmissionDate: submitted,
	}
	require.NoError(t, db.Create(house).Error)
	return house
}

func createTestPerson(t *testing.T, db *gorm.DB, houseID, submittedBy uint, gender string, submitted time.Time) *models.Person {
	t.Helper()
	person := &models.Person{
		Name:           "test person",
		MobileNumber:   "9876543210",
		Email:          "person@example.com",
		Gender:         gender,
		HouseID:        houseID,
		SubmittedByID:  submittedBy,
		SubmissionDate: submitted,
	}
	require.NoError(t, db.Create(person).Error)
	return person
}

func asPrincipal(user *models.User) Principal {
	return Principal{UserID: user.ID, Role: user.Role, TeamID: user.TeamID}
}
