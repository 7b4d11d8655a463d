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

var (
	ErrHouseNotFound = errors.New("house not found")
	ErrNotHouseOwner = errors.New("not authorized to modify this house")
	ErrTeamRequired  = errors.New("caller has no team to submit for")
)

// houseTranslator defines the filterable/sortable surface of houses
var houseTranslator = query.Translator{
	Fields: query.FieldMap{
		"id":             "id",
		"address":        "address",
		"area":           "area_id",
		"team":           "team_id",
		"submittedBy":    "submitted_by_id",
		"submissionDate": "submission_date",
	},
	DefaultSort: "submission_date DESC",
	// relation keys survive narrow selects so display names still resolve
	AlwaysSelect: []string{"id", "area_id", "team_id"},
}

// InterfaceHouseService defines the house service interface
type InterfaceHouseService interface {
	GetAllHouses(values url.Values) ([]models.House, query.Pagination, error)
	GetHouseByID(id uint) (*models.House, error)
	CreateHouse(principal Principal, house *models.House) error
	UpdateHouse(principal Principal, id uint, updates map[string]interface{}) (*models.House, error)
	DeleteHouse(principal Principal, id uint) error
}

// HouseService provides house operations
type HouseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHouseService creates a new house service
func NewHouseService(db *gorm.DB, cfg *config.Config) InterfaceHouseService {
	return &HouseService{
		DB:     db,
		Config: cfg,
	}
}

// selectName keeps relation preloads down to identity and display name
func selectName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// 1. GetAllHouses lists houses with filtering, sorting and pagination.
// Referenced area and team names are resolved for display at read time.
func (s *HouseService) GetAllHouses(values url.Values) ([]models.House, query.Pagination, error) {
	spec, err := houseTranslator.Translate(values)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	var total int64
	if err := s.DB.Model(&models.House{}).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	window := query.ParseWindow(values.Get("page"), values.Get("limit"))

	var houses []models.House
	if err := spec.Apply(s.DB.Model(&models.House{})).
		Preload("Area", selectName).
		Preload("Team", selectName).
		Offset(window.Skip).
		Limit(window.Limit).
		Find(&houses).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	return houses, window.Paginate(total), nil
}

// 2. GetHouseByID fetches a single house with display names resolved
func (s *HouseService) GetHouseByID(id uint) (*models.House, error) {
	var house models.House
	if err := s.DB.
		Preload("Area", selectName).
		Preload("Team", selectName).
		Preload("SubmittedBy", selectName).
		First(&house, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// 3. CreateHouse creates a house. The submitter is always the caller, and
// non-admin callers can only submit for their own team.
func (s *HouseService) CreateHouse(principal Principal, house *models.House) error {
	house.SubmittedByID = principal.UserID

	if !principal.IsAdmin() {
		if principal.TeamID == nil {
			return ErrTeamRequired
		}
		house.TeamID = *principal.TeamID
	}

	var areaCount int64
	if err := s.DB.Model(&models.Area{}).Where("id = ?", house.AreaID).Count(&areaCount).Error; err != nil {
		return err
	}
	if areaCount == 0 {
		return ErrAreaNotFound
	}

	return s.DB.Create(house).Error
}

// 4. UpdateHouse applies an allow-listed patch. Only the original submitter
// or an admin may proceed.
func (s *HouseService) UpdateHouse(principal Principal, id uint, updates map[string]interface{}) (*models.House, error) {
	house, err := s.GetHouseByID(id)
	if err != nil {
		return nil, err
	}

	if house.SubmittedByID != principal.UserID && !principal.IsAdmin() {
		return nil, ErrNotHouseOwner
	}

	if err := s.DB.Model(house).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetHouseByID(id)
}

// 5. DeleteHouse removes a house. Only the original submitter or an admin
// may proceed.
func (s *HouseService) DeleteHouse(principal Principal, id uint) error {
	house, err := s.GetHouseByID(id)
	if err != nil {
		return err
	}

	if house.SubmittedByID != principal.UserID && !principal.IsAdmin() {
		return ErrNotHouseOwner
	}

	return s.DB.Delete(&models.House{}, id).Error
}
