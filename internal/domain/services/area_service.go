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
	ErrAreaNotFound  = errors.New("area not found")
	ErrAreaNameTaken = errors.New("area name already exists")
	ErrAreaInUse     = errors.New("area still has houses assigned to it")
)

// areaTranslator defines the filterable/sortable surface of areas
var areaTranslator = query.Translator{
	Fields: query.FieldMap{
		"id":          "id",
		"name":        "name",
		"description": "description",
		"createdAt":   "created_at",
	},
	DefaultSort:  "created_at DESC",
	AlwaysSelect: []string{"id"},
}

// InterfaceAreaService defines the area service interface
type InterfaceAreaService interface {
	GetAllAreas(values url.Values) ([]models.Area, query.Pagination, error)
	GetAreaByID(id uint) (*models.Area, error)
	CreateArea(area *models.Area) error
	UpdateArea(id uint, updates map[string]interface{}) (*models.Area, error)
	DeleteArea(id uint) error
}

// AreaService provides survey-area operations
type AreaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAreaService creates a new area service
func NewAreaService(db *gorm.DB, cfg *config.Config) InterfaceAreaService {
	return &AreaService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllAreas lists areas with filtering, sorting and pagination
func (s *AreaService) GetAllAreas(values url.Values) ([]models.Area, query.Pagination, error) {
	spec, err := areaTranslator.Translate(values)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	var total int64
	if err := s.DB.Model(&models.Area{}).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	window := query.ParseWindow(values.Get("page"), values.Get("limit"))

	var areas []models.Area
	if err := spec.Apply(s.DB.Model(&models.Area{})).
		Offset(window.Skip).
		Limit(window.Limit).
		Find(&areas).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	return areas, window.Paginate(total), nil
}

// 2. GetAreaByID fetches a single area
func (s *AreaService) GetAreaByID(id uint) (*models.Area, error) {
	var area models.Area
	if err := s.DB.First(&area, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	return &area, nil
}

// 3. CreateArea creates a new area, enforcing name uniqueness
func (s *AreaService) CreateArea(area *models.Area) error {
	var count int64
	if err := s.DB.Model(&models.Area{}).Where("name = ?", area.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAreaNameTaken
	}

	return s.DB.Create(area).Error
}

// 4. UpdateArea applies an allow-listed patch to an area
func (s *AreaService) UpdateArea(id uint, updates map[string]interface{}) (*models.Area, error) {
	area, err := s.GetAreaByID(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != area.Name {
		var count int64
		if err := s.DB.Model(&models.Area{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAreaNameTaken
		}
	}

	if err := s.DB.Model(area).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAreaByID(id)
}

// 5. DeleteArea removes an area. Deletion is refused while houses still
// reference the area, so no house is left pointing at a missing record.
func (s *AreaService) DeleteArea(id uint) error {
	area, err := s.GetAreaByID(id)
	if err != nil {
		return err
	}

	var houseCount int64
	if err := s.DB.Model(&models.House{}).Where("area_id = ?", id).Count(&houseCount).Error; err != nil {
		return err
	}
	if houseCount > 0 {
		return ErrAreaInUse
	}

	return s.DB.Delete(area).Error
}
