package routes

import (
	_ "github.com/KCP2005/date-collection/docs"
	"github.com/KCP2005/date-collection/internal/app/controllers"
	"github.com/KCP2005/date-collection/internal/app/middleware"
	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/domain/services/container"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes gin with middleware, the service container and
// every API route
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	r.Use(middleware.RequestID())

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	redisService, _ := serviceContainer.GetService("redis").(services.InterfaceRedisService)
	middleware.InitAuthMiddleware(cfg, db, redisService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes configures routes reachable without a token
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	// 10 requests per second with bursts of 20 per client IP
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandlePingFunc())
	api.GET("/health", controllers.HandleHealthFunc(container))

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes configures routes behind the token check
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	auth := api.Group("/")
	auth.Use(middleware.Authenticate())
	// 30 requests per second with bursts of 50 per client IP
	auth.Use(middleware.IPRateLimiter(30, 50))

	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))
	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))

	usersGroup := auth.Group("/users")
	{
		usersGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
		usersGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
		usersGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
		usersGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))
	}

	// teams only change through admins
	teamsGroup := auth.Group("/teams")
	{
		teamsGroup.GET("", controllers.HandleTeamFunc(container, "getTeams"))
		teamsGroup.GET("/:id", controllers.HandleTeamFunc(container, "getTeam"))
		teamsGroup.POST("", middleware.RequireAdmin(), controllers.HandleTeamFunc(container, "createTeam"))
		teamsGroup.PUT("/:id", middleware.RequireAdmin(), controllers.HandleTeamFunc(container, "updateTeam"))
		teamsGroup.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleTeamFunc(container, "deleteTeam"))
		teamsGroup.POST("/:id/members", middleware.RequireAdmin(), controllers.HandleTeamFunc(container, "addMember"))
		teamsGroup.DELETE("/:id/members", middleware.RequireAdmin(), controllers.HandleTeamFunc(container, "removeMember"))
	}

	areasGroup := auth.Group("/areas")
	{
		areasGroup.GET("", controllers.HandleAreaFunc(container, "getAreas"))
		areasGroup.GET("/:id", controllers.HandleAreaFunc(container, "getArea"))
		areasGroup.POST("", controllers.HandleAreaFunc(container, "createArea"))
		areasGroup.PUT("/:id", controllers.HandleAreaFunc(container, "updateArea"))
		areasGroup.DELETE("/:id", controllers.HandleAreaFunc(container, "deleteArea"))
	}

	housesGroup := auth.Group("/houses")
	{
		housesGroup.GET("", controllers.HandleHouseFunc(container, "getHouses"))
		housesGroup.GET("/:id", controllers.HandleHouseFunc(container, "getHouse"))
		housesGroup.POST("", controllers.HandleHouseFunc(container, "createHouse"))
		housesGroup.PUT("/:id", controllers.HandleHouseFunc(container, "updateHouse"))
		housesGroup.DELETE("/:id", controllers.HandleHouseFunc(container, "deleteHouse"))
	}

	peopleGroup := auth.Group("/people")
	{
		peopleGroup.GET("", controllers.HandlePersonFunc(container, "getPeople"))
		peopleGroup.GET("/:id", controllers.HandlePersonFunc(container, "getPerson"))
		peopleGroup.POST("", controllers.HandlePersonFunc(container, "createPerson"))
		peopleGroup.PUT("/:id", controllers.HandlePersonFunc(container, "updatePerson"))
		peopleGroup.DELETE("/:id", controllers.HandlePersonFunc(container, "deletePerson"))
	}

	statsGroup := auth.Group("/stats")
	{
		statsGroup.GET("/summary", controllers.HandleStatsFunc(container, "summary"))
		statsGroup.GET("/by-team", controllers.HandleStatsFunc(container, "byTeam"))
		statsGroup.GET("/by-area", controllers.HandleStatsFunc(container, "byArea"))
		statsGroup.GET("/by-time", controllers.HandleStatsFunc(container, "byTime"))
	}
}
