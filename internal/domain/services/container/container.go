package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires all services together with their dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// auth services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// business services
	areaService   services.InterfaceAreaService
	houseService  services.InterfaceHouseService
	personService services.InterfacePersonService
	teamService   services.InterfaceTeamService
	userService   services.InterfaceUserService
	statsService  services.InterfaceStatsService

	mu sync.RWMutex
}

// NewServiceContainer creates the container. A nil or unreachable Redis
// client is tolerated; token revocation is then disabled.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis ping failed: %v, continuing without token revocation", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds every service instance
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.redis != nil {
		c.redisService = services.NewRedisService(c.redis)
	}
	c.jwtService = services.NewJWTService(c.config, c.db, c.redisService)

	c.areaService = services.NewAreaService(c.db, c.config)
	c.houseService = services.NewHouseService(c.db, c.config)
	c.personService = services.NewPersonService(c.db, c.config)
	c.teamService = services.NewTeamService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.statsService = services.NewStatsService(c.db, c.config)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "area":
		return c.areaService
	case "house":
		return c.houseService
	case "person":
		return c.personService
	case "team":
		return c.teamService
	case "user":
		return c.userService
	case "stats":
		return c.statsService
	default:
		return nil
	}
}

// GetDB returns the shared database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
