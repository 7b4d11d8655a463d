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
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrNotAllowed        = errors.New("not authorized to perform this action")
)

// userTranslator defines the filterable/sortable surface of users
var userTranslator = query.Translator{
	Fields: query.FieldMap{
		"id":           "id",
		"name":         "name",
		"email":        "email",
		"role":         "role",
		"team":         "team_id",
		"isMainMember": "is_main_member",
		"createdAt":    "created_at",
	},
	DefaultSort:  "created_at DESC",
	AlwaysSelect: []string{"id"},
}

// userSummaryColumns is the default listing projection; the password column
// never leaves the store on this path.
var userSummaryColumns = []string{"id", "name", "email", "role", "team_id", "is_main_member"}

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetAllUsers(values url.Values) ([]models.User, query.Pagination, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(principal Principal, id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(principal Principal, id uint) error
}

// UserService provides account operations
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllUsers lists accounts; without an explicit select the listing
// projects the summary columns only
func (s *UserService) GetAllUsers(values url.Values) ([]models.User, query.Pagination, error) {
	spec, err := userTranslator.Translate(values)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	if len(spec.Columns) == 0 {
		spec.Columns = userSummaryColumns
	}

	var total int64
	if err := s.DB.Model(&models.User{}).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	window := query.ParseWindow(values.Get("page"), values.Get("limit"))

	var users []models.User
	if err := spec.Apply(s.DB.Model(&models.User{})).
		Offset(window.Skip).
		Limit(window.Limit).
		Find(&users).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	return users, window.Paginate(total), nil
}

// 2. GetUserByID fetches a single user with their team resolved
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Team").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// 3. UpdateUser applies an allow-listed patch. Password changes never go
// through this path, and only admins may change roles.
func (s *UserService) UpdateUser(principal Principal, id uint, updates map[string]interface{}) (*models.User, error) {
	delete(updates, "password")
	if !principal.IsAdmin() {
		delete(updates, "role")
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetUserByID(id)
}

// 4. DeleteUser removes an account. Only an admin or the user themselves
// may proceed.
func (s *UserService) DeleteUser(principal Principal, id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if !principal.IsAdmin() && principal.UserID != id {
		return ErrNotAllowed
	}

	return s.DB.Delete(user).Error
}
