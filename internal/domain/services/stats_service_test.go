package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummaryEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	summary, err := svc.GetSummary(url.Values{})
	require.NoError(t, err)

	assert.Zero(t, summary.TotalHouses)
	assert.Zero(t, summary.TotalPeople)
	// empty house set never divides by zero
	assert.Zero(t, summary.AvgPeoplePerHouse)
	assert.Equal(t, GenderDistribution{}, summary.GenderDistribution)
}

func TestGetSummaryCountsAndAverage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	h1 := createTestHouse(t, db, area.ID, team.ID, admin.ID, time.Now())
	h2 := createTestHouse(t, db, area.ID, team.ID, admin.ID, time.Now())

	createTestPerson(t, db, h1.ID, admin.ID, models.GenderMale, time.Now())
	createTestPerson(t, db, h1.ID, admin.ID, models.GenderFemale, time.Now())
	createTestPerson(t, db, h2.ID, admin.ID, models.GenderFemale, time.Now())

	summary, err := svc.GetSummary(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.TotalHouses)
	assert.Equal(t, int64(3), summary.TotalPeople)
	assert.Equal(t, int64(1), summary.TotalTeams)
	assert.Equal(t, int64(1), summary.TotalAreas)
	assert.Equal(t, 1.5, summary.AvgPeoplePerHouse)
	assert.Equal(t, GenderDistribution{Male: 1, Female: 2, Other: 0}, summary.GenderDistribution)
}

func TestGetSummaryScopedByArea(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	ward1 := createTestArea(t, db, "Ward 1")
	ward2 := createTestArea(t, db, "Ward 2")

	inScope := createTestHouse(t, db, ward1.ID, team.ID, admin.ID, time.Now())
	outScope := createTestHouse(t, db, ward2.ID, team.ID, admin.ID, time.Now())

	createTestPerson(t, db, inScope.ID, admin.ID, models.GenderMale, time.Now())
	createTestPerson(t, db, outScope.ID, admin.ID, models.GenderFemale, time.Now())

	summary, err := svc.GetSummary(url.Values{"area": {"1"}})
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TotalHouses)
	assert.Equal(t, int64(1), summary.TotalPeople)
	assert.Equal(t, GenderDistribution{Male: 1}, summary.GenderDistribution)
}

func TestGetSummaryRejectsBadDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	_, err := svc.GetSummary(url.Values{"startDate": {"not-a-date"}})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestGetStatsByTeam(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	alpha := createTestTeam(t, db, "alpha", admin.ID)
	beta := createTestTeam(t, db, "beta", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	a1 := createTestHouse(t, db, area.ID, alpha.ID, admin.ID, time.Now())
	a2 := createTestHouse(t, db, area.ID, alpha.ID, admin.ID, time.Now())
	b1 := createTestHouse(t, db, area.ID, beta.ID, admin.ID, time.Now())

	createTestPerson(t, db, a1.ID, admin.ID, models.GenderMale, time.Now())
	createTestPerson(t, db, a2.ID, admin.ID, models.GenderFemale, time.Now())
	createTestPerson(t, db, a2.ID, admin.ID, models.GenderFemale, time.Now())
	createTestPerson(t, db, b1.ID, admin.ID, models.GenderOther, time.Now())

	stats, err := svc.GetStatsByTeam(url.Values{})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byName := make(map[string]TeamStats)
	for _, s := range stats {
		byName[s.Name] = s
	}

	assert.Equal(t, int64(2), byName["alpha"].Houses)
	assert.Equal(t, int64(3), byName["alpha"].People)
	assert.Equal(t, 1.5, byName["alpha"].AvgPeoplePerHouse)

	assert.Equal(t, int64(1), byName["beta"].Houses)
	assert.Equal(t, int64(1), byName["beta"].People)
	assert.Equal(t, 1.0, byName["beta"].AvgPeoplePerHouse)
}

func TestGetStatsByArea(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	ward1 := createTestArea(t, db, "Ward 1")
	ward2 := createTestArea(t, db, "Ward 2")

	h1 := createTestHouse(t, db, ward1.ID, team.ID, admin.ID, time.Now())
	h2 := createTestHouse(t, db, ward2.ID, team.ID, admin.ID, time.Now())

	createTestPerson(t, db, h1.ID, admin.ID, models.GenderMale, time.Now())
	createTestPerson(t, db, h1.ID, admin.ID, models.GenderFemale, time.Now())
	createTestPerson(t, db, h2.ID, admin.ID, models.GenderOther, time.Now())

	stats, err := svc.GetStatsByArea(url.Values{})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byName := make(map[string]AreaStats)
	for _, s := range stats {
		byName[s.Name] = s
	}

	assert.Equal(t, int64(1), byName["Ward 1"].Houses)
	assert.Equal(t, int64(2), byName["Ward 1"].People)
	assert.Equal(t, GenderDistribution{Male: 1, Female: 1}, byName["Ward 1"].GenderDistribution)

	assert.Equal(t, GenderDistribution{Other: 1}, byName["Ward 2"].GenderDistribution)
}

func TestGetStatsByTimeBucketsAtMidnight(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	team := createTestTeam(t, db, "crew", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	lateNight := time.Date(2024, 3, 1, 23, 30, 0, 0, time.Local)
	earlyMorning := time.Date(2024, 3, 2, 0, 30, 0, 0, time.Local)

	h1 := createTestHouse(t, db, area.ID, team.ID, admin.ID, lateNight)
	h2 := createTestHouse(t, db, area.ID, team.ID, admin.ID, earlyMorning)

	createTestPerson(t, db, h1.ID, admin.ID, models.GenderMale, lateNight)
	createTestPerson(t, db, h2.ID, admin.ID, models.GenderFemale, earlyMorning)
	createTestPerson(t, db, h2.ID, admin.ID, models.GenderMale, earlyMorning)

	stats, err := svc.GetStatsByTime(url.Values{})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// buckets come back in ascending day order
	assert.Equal(t, "2024-03-01", stats[0].Date)
	assert.Equal(t, int64(1), stats[0].Houses)
	assert.Equal(t, int64(1), stats[0].People)

	assert.Equal(t, "2024-03-02", stats[1].Date)
	assert.Equal(t, int64(1), stats[1].Houses)
	assert.Equal(t, int64(2), stats[1].People)
}

func TestDayBoundsStayOnCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 23-hour day: clocks jump from 02:00 to 03:00
	springForward := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	start, end := dayBounds(springForward)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc).Add(-time.Millisecond), end)

	// 25-hour day: clocks fall back from 02:00 to 01:00
	fallBack := time.Date(2024, 11, 3, 0, 0, 0, 0, loc)
	start, end = dayBounds(fallBack)
	assert.Equal(t, time.Date(2024, 11, 3, 0, 0, 0, 0, loc), start)
	assert.Equal(t, 25*time.Hour-time.Millisecond, end.Sub(start))

	// plain day keeps the usual 24-hour window
	plain := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	start, end = dayBounds(plain)
	assert.Equal(t, 24*time.Hour-time.Millisecond, end.Sub(start))
}

func TestGetStatsByTimeHonorsScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db, testConfig())

	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	alpha := createTestTeam(t, db, "alpha", admin.ID)
	beta := createTestTeam(t, db, "beta", admin.ID)
	area := createTestArea(t, db, "Ward 1")

	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	createTestHouse(t, db, area.ID, alpha.ID, admin.ID, day)
	createTestHouse(t, db, area.ID, beta.ID, admin.ID, day)

	stats, err := svc.GetStatsByTime(url.Values{"team": {"1"}})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(1), stats[0].Houses)
}
