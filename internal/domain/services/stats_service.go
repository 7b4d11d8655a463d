package services

import (
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/models"
	"github.com/KCP2005/date-collection/internal/domain/query"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"gorm.io/gorm"
)

// dateLayout is the calendar-date format accepted by the stats filters and
// produced by the by-time grouping
const dateLayout = "2006-01-02"

// GenderDistribution always reports the three fixed categories, zero-filled
type GenderDistribution struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
	Other  int64 `json:"other"`
}

// SummaryStats is the overall rollup
type SummaryStats struct {
	TotalHouses        int64              `json:"totalHouses"`
	TotalPeople        int64              `json:"totalPeople"`
	TotalTeams         int64              `json:"totalTeams"`
	TotalAreas         int64              `json:"totalAreas"`
	AvgPeoplePerHouse  float64            `json:"avgPeoplePerHouse"`
	GenderDistribution GenderDistribution `json:"genderDistribution"`
}

// TeamStats is one row of the per-team breakdown
type TeamStats struct {
	TeamID            uint    `json:"team_id"`
	Name              string  `json:"name"`
	Houses            int64   `json:"houses"`
	People            int64   `json:"people"`
	AvgPeoplePerHouse float64 `json:"avgPeoplePerHouse"`
}

// AreaStats is one row of the per-area breakdown
type AreaStats struct {
	AreaID             uint               `json:"area_id"`
	Name               string             `json:"name"`
	Houses             int64              `json:"houses"`
	People             int64              `json:"people"`
	GenderDistribution GenderDistribution `json:"genderDistribution"`
}

// TimeStats is one day bucket of the by-time breakdown
type TimeStats struct {
	Date   string `json:"date"`
	Houses int64  `json:"houses"`
	People int64  `json:"people"`
}

// InterfaceStatsService defines the statistics service interface
type InterfaceStatsService interface {
	GetSummary(values url.Values) (*SummaryStats, error)
	GetStatsByTeam(values url.Values) ([]TeamStats, error)
	GetStatsByArea(values url.Values) ([]AreaStats, error)
	GetStatsByTime(values url.Values) ([]TimeStats, error)
}

// StatsService computes rollup statistics over houses and people
type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStatsService creates a new statistics service
func NewStatsService(db *gorm.DB, cfg *config.Config) InterfaceStatsService {
	return &StatsService{
		DB:     db,
		Config: cfg,
	}
}

// scopeSpec translates the optional area/team/startDate/endDate parameters
// into a house-level filter shared by every statistics operation
func (s *StatsService) scopeSpec(values url.Values) (*query.Spec, error) {
	spec := &query.Spec{}

	if area := values.Get("area"); area != "" {
		spec.Conditions = append(spec.Conditions, query.Condition{Column: "area_id", Op: query.OpEq, Value: area})
	}
	if team := values.Get("team"); team != "" {
		spec.Conditions = append(spec.Conditions, query.Condition{Column: "team_id", Op: query.OpEq, Value: team})
	}
	if start := values.Get("startDate"); start != "" {
		t, err := time.ParseInLocation(dateLayout, start, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidQuery, start)
		}
		spec.Conditions = append(spec.Conditions, query.Condition{Column: "submission_date", Op: query.OpGte, Value: t})
	}
	if end := values.Get("endDate"); end != "" {
		t, err := time.ParseInLocation(dateLayout, end, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidQuery, end)
		}
		spec.Conditions = append(spec.Conditions, query.Condition{Column: "submission_date", Op: query.OpLte, Value: t})
	}

	return spec, nil
}

// scopedHouseIDs materializes the ID set of houses matching a filter. People
// rollups run against this set, so any store that can filter houses and match
// a field against a set can serve the statistics.
func (s *StatsService) scopedHouseIDs(scope func(db *gorm.DB) *gorm.DB) ([]uint, error) {
	var ids []uint
	if err := s.DB.Model(&models.House{}).Scopes(scope).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// countPeopleIn counts people whose house is in the given ID set
func (s *StatsService) countPeopleIn(houseIDs []uint) (int64, error) {
	if len(houseIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := s.DB.Model(&models.Person{}).Where("house_id IN ?", houseIDs).Count(&count).Error
	return count, err
}

// genderDistributionIn groups people in the given house set by gender
func (s *StatsService) genderDistributionIn(houseIDs []uint) (GenderDistribution, error) {
	var dist GenderDistribution
	if len(houseIDs) == 0 {
		return dist, nil
	}

	var rows []struct {
		Gender string
		Count  int64
	}
	if err := s.DB.Model(&models.Person{}).
		Select("gender, COUNT(*) AS count").
		Where("house_id IN ?", houseIDs).
		Group("gender").
		Scan(&rows).Error; err != nil {
		return dist, err
	}

	for _, row := range rows {
		switch row.Gender {
		case models.GenderMale:
			dist.Male = row.Count
		case models.GenderFemale:
			dist.Female = row.Count
		case models.GenderOther:
			dist.Other = row.Count
		}
	}
	return dist, nil
}

// avgPeoplePerHouse rounds to two decimals and guards the empty-house case
func avgPeoplePerHouse(people, houses int64) float64 {
	if houses == 0 {
		return 0
	}
	return math.Round(float64(people)/float64(houses)*100) / 100
}

// 1. GetSummary computes the overall totals, average and gender split
func (s *StatsService) GetSummary(values url.Values) (*SummaryStats, error) {
	scope, err := s.scopeSpec(values)
	if err != nil {
		return nil, err
	}

	summary := &SummaryStats{}

	if err := s.DB.Model(&models.House{}).Scopes(scope.Scope()).Count(&summary.TotalHouses).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Team{}).Count(&summary.TotalTeams).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Area{}).Count(&summary.TotalAreas).Error; err != nil {
		return nil, err
	}

	houseIDs, err := s.scopedHouseIDs(scope.Scope())
	if err != nil {
		return nil, err
	}

	if summary.TotalPeople, err = s.countPeopleIn(houseIDs); err != nil {
		return nil, err
	}
	if summary.GenderDistribution, err = s.genderDistributionIn(houseIDs); err != nil {
		return nil, err
	}
	summary.AvgPeoplePerHouse = avgPeoplePerHouse(summary.TotalPeople, summary.TotalHouses)

	return summary, nil
}

// 2. GetStatsByTeam groups scoped houses by team and resolves each team's
// people count through its house-ID set
func (s *StatsService) GetStatsByTeam(values url.Values) ([]TeamStats, error) {
	scope, err := s.scopeSpec(values)
	if err != nil {
		return nil, err
	}

	var rows []teamGroup
	if err := s.DB.Model(&models.House{}).
		Select("team_id, COUNT(*) AS houses").
		Scopes(scope.Scope()).
		Group("team_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	names, err := s.teamNames(rows)
	if err != nil {
		return nil, err
	}

	stats := make([]TeamStats, 0, len(rows))
	for _, row := range rows {
		var houseIDs []uint
		if err := s.DB.Model(&models.House{}).Where("team_id = ?", row.TeamID).Pluck("id", &houseIDs).Error; err != nil {
			return nil, err
		}

		people, err := s.countPeopleIn(houseIDs)
		if err != nil {
			return nil, err
		}

		stats = append(stats, TeamStats{
			TeamID:            row.TeamID,
			Name:              names[row.TeamID],
			Houses:            row.Houses,
			People:            people,
			AvgPeoplePerHouse: avgPeoplePerHouse(people, row.Houses),
		})
	}
	return stats, nil
}

type teamGroup struct {
	TeamID uint
	Houses int64
}

type areaGroup struct {
	AreaID uint
	Houses int64
}

func (s *StatsService) teamNames(rows []teamGroup) (map[uint]string, error) {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.TeamID)
	}

	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var teams []models.Team
	if err := s.DB.Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, team := range teams {
		names[team.ID] = team.Name
	}
	return names, nil
}

// 3. GetStatsByArea groups scoped houses by area with people counts and
// a full gender distribution per area
func (s *StatsService) GetStatsByArea(values url.Values) ([]AreaStats, error) {
	scope, err := s.scopeSpec(values)
	if err != nil {
		return nil, err
	}

	var rows []areaGroup
	if err := s.DB.Model(&models.House{}).
		Select("area_id, COUNT(*) AS houses").
		Scopes(scope.Scope()).
		Group("area_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	areaIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		areaIDs = append(areaIDs, row.AreaID)
	}

	names := make(map[uint]string, len(areaIDs))
	if len(areaIDs) > 0 {
		var areas []models.Area
		if err := s.DB.Where("id IN ?", areaIDs).Find(&areas).Error; err != nil {
			return nil, err
		}
		for _, area := range areas {
			names[area.ID] = area.Name
		}
	}

	stats := make([]AreaStats, 0, len(rows))
	for _, row := range rows {
		var houseIDs []uint
		if err := s.DB.Model(&models.House{}).Where("area_id = ?", row.AreaID).Pluck("id", &houseIDs).Error; err != nil {
			return nil, err
		}

		people, err := s.countPeopleIn(houseIDs)
		if err != nil {
			return nil, err
		}
		dist, err := s.genderDistributionIn(houseIDs)
		if err != nil {
			return nil, err
		}

		stats = append(stats, AreaStats{
			AreaID:             row.AreaID,
			Name:               names[row.AreaID],
			Houses:             row.Houses,
			People:             people,
			GenderDistribution: dist,
		})
	}
	return stats, nil
}

// 4. GetStatsByTime groups scoped houses by calendar day in ascending order.
// Each day's people count runs against a fresh day-bounded house set combined
// with the outer scope, so midnight is a hard bucket edge.
// dayBounds returns [00:00:00.000, 23:59:59.999] of the calendar day holding
// t, in t's location. The end is anchored on the next day's midnight so the
// bucket stays on its own calendar day when a DST transition shortens or
// stretches the day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Millisecond)
	return start, end
}

func (s *StatsService) GetStatsByTime(values url.Values) ([]TimeStats, error) {
	scope, err := s.scopeSpec(values)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Date   string
		Houses int64
	}
	if err := s.DB.Model(&models.House{}).
		Select("DATE(submission_date) AS date, COUNT(*) AS houses").
		Scopes(scope.Scope()).
		Group("DATE(submission_date)").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]TimeStats, 0, len(rows))
	for _, row := range rows {
		dayStart, err := time.ParseInLocation(dateLayout, row.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("unexpected day bucket %q: %v", row.Date, err)
		}
		dayStart, dayEnd := dayBounds(dayStart)

		var houseIDs []uint
		if err := s.DB.Model(&models.House{}).
			Scopes(scope.Scope()).
			Where("submission_date >= ? AND submission_date <= ?", dayStart, dayEnd).
			Pluck("id", &houseIDs).Error; err != nil {
			return nil, err
		}

		people, err := s.countPeopleIn(houseIDs)
		if err != nil {
			return nil, err
		}

		stats = append(stats, TimeStats{
			Date:   row.Date,
			Houses: row.Houses,
			People: people,
		})
	}
	return stats, nil
}
