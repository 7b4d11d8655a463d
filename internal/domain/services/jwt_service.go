package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/models"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, role string, teamID *uint) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Register(name, email, password, role string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	Logout(tokenString string) error
}

// AuthResult is the outcome of a successful register or login
type AuthResult struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	TeamID *uint  `json:"team_id,omitempty"`
}

// JWTClaims is the token claim structure
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	TeamID *uint  `json:"team_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies tokens and handles credential checks
type JWTService struct {
	secretKey   string
	issuer      string
	expireHours int
	DB          *gorm.DB
	redis       InterfaceRedisService
}

// NewJWTService creates a new JWT service. The Redis service may be nil;
// logout revocation is then unavailable but tokens still verify.
func NewJWTService(cfg *config.Config, db *gorm.DB, redis InterfaceRedisService) InterfaceJWTService {
	return &JWTService{
		secretKey:   cfg.JWTSecretKey,
		issuer:      "date-collection",
		expireHours: cfg.JWTExpireHours,
		DB:          db,
		redis:       redis,
	}
}

// 1. GenerateToken issues a signed token for a user
func (s *JWTService) GenerateToken(userID uint, role string, teamID *uint) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.expireHours) * time.Hour)

	claims := &JWTClaims{
		UserID: userID,
		Role:   role,
		TeamID: teamID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2. ValidateToken verifies signature and expiry, and rejects tokens that
// were revoked through logout
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		denied, err := s.redis.IsTokenDenied(tokenString)
		if err == nil && denied {
			return nil, ErrTokenRevoked
		}
	}

	return token, nil
}

// 3. ExtractClaims returns the typed claims of a valid token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// 4. Register creates a new account and returns a fresh token
func (s *JWTService) Register(name, email, password, role string) (*AuthResult, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExists
	}

	if role == "" {
		role = models.RoleTeamMember
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: password, // hashed by the model hook
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.ID, user.Role, user.TeamID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		TeamID: user.TeamID,
	}, nil
}

// 5. Login checks credentials and returns a fresh token
func (s *JWTService) Login(email, password string) (*AuthResult, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID, user.Role, user.TeamID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		TeamID: user.TeamID,
	}, nil
}

// 6. Logout revokes a token for the remainder of its lifetime. A token that
// has already expired needs no deny-list entry, so logging out with one
// succeeds without touching Redis.
func (s *JWTService) Logout(tokenString string) error {
	claims, err := s.ExtractClaims(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil
		}
		return err
	}

	if s.redis == nil {
		return errors.New("token revocation unavailable")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.DenyToken(tokenString, ttl)
}
