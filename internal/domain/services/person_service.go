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
	ErrPersonNotFound = errors.New("person not found")
	ErrNotPersonOwner = errors.New("not authorized to modify this person")
)

// personTranslator defines the filterable/sortable surface of people
var personTranslator = query.Translator{
	Fields: query.FieldMap{
		"id":             "id",
		"name":           "name",
		"mobileNumber":   "mobile_number",
		"email":          "email",
		"gender":         "gender",
		"house":          "house_id",
		"submittedBy":    "submitted_by_id",
		"submissionDate": "submission_date",
	},
	DefaultSort:  "submission_date DESC",
	AlwaysSelect: []string{"id", "house_id"},
}

// InterfacePersonService defines the person service interface
type InterfacePersonService interface {
	GetAllPeople(values url.Values) ([]models.Person, query.Pagination, error)
	GetPersonByID(id uint) (*models.Person, error)
	CreatePerson(principal Principal, person *models.Person) error
	UpdatePerson(principal Principal, id uint, updates map[string]interface{}) (*models.Person, error)
	DeletePerson(principal Principal, id uint) error
}

// PersonService provides person operations
type PersonService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPersonService creates a new person service
func NewPersonService(db *gorm.DB, cfg *config.Config) InterfacePersonService {
	return &PersonService{
		DB:     db,
		Config: cfg,
	}
}

// selectAddress keeps house preloads down to identity and address
func selectAddress(db *gorm.DB) *gorm.DB {
	return db.Select("id", "address")
}

// 1. GetAllPeople lists people with filtering, sorting and pagination.
// The referenced house address is resolved for display at read time.
func (s *PersonService) GetAllPeople(values url.Values) ([]models.Person, query.Pagination, error) {
	spec, err := personTranslator.Translate(values)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	var total int64
	if err := s.DB.Model(&models.Person{}).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	window := query.ParseWindow(values.Get("page"), values.Get("limit"))

	var people []models.Person
	if err := spec.Apply(s.DB.Model(&models.Person{})).
		Preload("House", selectAddress).
		Offset(window.Skip).
		Limit(window.Limit).
		Find(&people).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	return people, window.Paginate(total), nil
}

// 2. GetPersonByID fetches a single person
func (s *PersonService) GetPersonByID(id uint) (*models.Person, error) {
	var person models.Person
	if err := s.DB.Preload("House", selectAddress).First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

// 3. CreatePerson creates a person against an existing house. The caller
// must be the house's submitter or an admin.
func (s *PersonService) CreatePerson(principal Principal, person *models.Person) error {
	var house models.House
	if err := s.DB.First(&house, person.HouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHouseNotFound
		}
		return err
	}

	if house.SubmittedByID != principal.UserID && !principal.IsAdmin() {
		return ErrNotHouseOwner
	}

	person.SubmittedByID = principal.UserID
	return s.DB.Create(person).Error
}

// 4. UpdatePerson applies an allow-listed patch. Only the original submitter
// or an admin may proceed.
func (s *PersonService) UpdatePerson(principal Principal, id uint, updates map[string]interface{}) (*models.Person, error) {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return nil, err
	}

	if person.SubmittedByID != principal.UserID && !principal.IsAdmin() {
		return nil, ErrNotPersonOwner
	}

	if err := s.DB.Model(person).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPersonByID(id)
}

// 5. DeletePerson removes a person. Only the original submitter or an admin
// may proceed.
func (s *PersonService) DeletePerson(principal Principal, id uint) error {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return err
	}

	if person.SubmittedByID != principal.UserID && !principal.IsAdmin() {
		return ErrNotPersonOwner
	}

	return s.DB.Delete(&models.Person{}, id).Error
}
