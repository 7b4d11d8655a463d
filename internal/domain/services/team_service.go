package services

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/KCP2005/date-collection/internal/domain/models"
	"github.com/KCP2005/date-collection/internal/domain/query"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

// teamTranslator defines the filterable/sortable surface of teams
var teamTranslator = query.Translator{
	Fields: query.FieldMap{
		"id":        "id",
		"name":      "name",
		"createdBy": "created_by_id",
		"createdAt": "created_at",
	},
	DefaultSort:  "created_at DESC",
	AlwaysSelect: []string{"id"},
}

// InterfaceTeamService defines the team service interface
type InterfaceTeamService interface {
	GetAllTeams(values url.Values) ([]models.Team, query.Pagination, error)
	GetTeamByID(id uint) (*models.Team, error)
	CreateTeam(principal Principal, team *models.Team) error
	UpdateTeam(id uint, updates map[string]interface{}) (*models.Team, error)
	DeleteTeam(id uint) error
	AddMember(teamID, userID uint, isMainMember bool) (*models.Team, error)
	RemoveMember(teamID, userID uint) (*models.Team, error)
}

// TeamService provides field-team operations
type TeamService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTeamService creates a new team service
func NewTeamService(db *gorm.DB, cfg *config.Config) InterfaceTeamService {
	return &TeamService{
		DB:     db,
		Config: cfg,
	}
}

// selectMemberSummary keeps main-member preloads down to display fields
func selectMemberSummary(db *gorm.DB) *gorm.DB {
	return db.Select("users.id", "users.name", "users.email")
}

// 1. GetAllTeams lists teams with their lead members resolved
func (s *TeamService) GetAllTeams(values url.Values) ([]models.Team, query.Pagination, error) {
	spec, err := teamTranslator.Translate(values)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	var total int64
	if err := s.DB.Model(&models.Team{}).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	window := query.ParseWindow(values.Get("page"), values.Get("limit"))

	var teams []models.Team
	if err := spec.Apply(s.DB.Model(&models.Team{})).
		Preload("MainMembers", selectMemberSummary).
		Offset(window.Skip).
		Limit(window.Limit).
		Find(&teams).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	return teams, window.Paginate(total), nil
}

// 2. GetTeamByID fetches a single team with its lead members resolved
func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.DB.Preload("MainMembers", selectMemberSummary).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// 3. CreateTeam creates a team recording the caller as creator
func (s *TeamService) CreateTeam(principal Principal, team *models.Team) error {
	team.CreatedByID = principal.UserID
	return s.DB.Create(team).Error
}

// 4. UpdateTeam applies an allow-listed patch to a team
func (s *TeamService) UpdateTeam(id uint, updates map[string]interface{}) (*models.Team, error) {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(team).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetTeamByID(id)
}

// 5. DeleteTeam removes a team
func (s *TeamService) DeleteTeam(id uint) error {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return err
	}

	return s.DB.Select("MainMembers").Delete(team).Error
}

// 6. AddMember assigns a user to a team. The user record and the team's lead
// set are updated together inside one transaction; marking the same user as
// main member twice never duplicates the lead entry.
func (s *TeamService) AddMember(teamID, userID uint, isMainMember bool) (*models.Team, error) {
	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(map[string]interface{}{
			"team_id":        team.ID,
			"is_main_member": isMainMember,
		}).Error; err != nil {
			return err
		}

		if !isMainMember {
			return nil
		}

		var existing int64
		if err := tx.Table("team_main_members").
			Where("team_id = ? AND user_id = ?", team.ID, user.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			if err := tx.Model(team).Association("MainMembers").Append(&user); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTeamByID(teamID)
}

// 7. RemoveMember detaches a user from a team. The user's team assignment is
// cleared and the lead entry removed if present; removing a non-lead is a
// no-op on the lead set.
func (s *TeamService) RemoveMember(teamID, userID uint) (*models.Team, error) {
	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(map[string]interface{}{
			"team_id":        nil,
			"is_main_member": false,
		}).Error; err != nil {
			return err
		}

		return tx.Model(team).Association("MainMembers").Delete(&user)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTeamByID(teamID)
}
