// @title           Date Collection API
// @version         1.0
// @description     Census field-survey backend tracking areas, houses, people and the teams collecting them

// @host      localhost:5001
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"runtime"

	"github.com/KCP2005/date-collection/internal/app/routes"
	"github.com/KCP2005/date-collection/internal/domain/models"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"
	"github.com/KCP2005/date-collection/internal/infrastructure/database"
	"github.com/KCP2005/date-collection/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	log := logger.NewLogger("date-collection")
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded", "error", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}
	db := pool.GetDB()

	if err := autoMigrate(db); err != nil {
		log.Fatal("database migration failed", "error", err)
	}

	ensureAdminExists(db, cfg, log)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	log.Info("server starting", "addr", "0.0.0.0:"+cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

// autoMigrate adds new tables and columns without dropping anything
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Area{},
		&models.House{},
		&models.Person{},
	)
}

// ensureAdminExists seeds a default admin account on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config, log *logger.Logger) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword, // hashed by the model hook
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("seeding default admin failed", "error", err)
	}

	log.Info("created default admin account", "email", cfg.DefaultAdminEmail)
}
