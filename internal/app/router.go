package app

import (
	"lingoland_backend/docs"
	"lingoland_backend/internal/config"
	"lingoland_backend/internal/middleware"
	"lingoland_backend/internal/model"
	"lingoland_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// catalog browsing is open; the course detail resolves the learner's
		// overlay when a token is present
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(a.Config), c.course.GetCourse)
		public.GET("/achievements", c.gamification.ListAchievements)
		public.GET("/leaderboard", c.gamification.GetLeaderboard)
		public.GET("/games", c.practice.ListGames)
		public.GET("/shop/items", c.shop.ListItems)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	// learning
	rg.POST("/lessons/:id/complete", c.course.CompleteLesson)
	rg.POST("/games/:code/results", c.practice.SubmitResult)
	rg.GET("/games/results", c.practice.RecentResults)

	// gamification
	rg.GET("/quests", c.gamification.GetDailyQuests)
	rg.POST("/quests/:id/claim", c.gamification.ClaimQuest)
	rg.GET("/badges", c.gamification.GetBadges)

	// economy
	rg.POST("/shop/items/:id/purchase", c.shop.Purchase)
	rg.GET("/shop/purchases", c.shop.PurchaseHistory)
	rg.GET("/inventory", c.inventory.ListInventory)
	rg.POST("/inventory/:id/equip", c.inventory.Equip)
	rg.POST("/inventory/:id/unequip", c.inventory.Unequip)

	// handbook
	rg.GET("/handbook", c.handbook.ListCards)
	rg.GET("/handbook/owned", c.handbook.ListOwned)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(model.Admin),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		// accounts
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id/disable", c.user.DisableUser)
		admin.POST("/users/:id/reset-password", c.user.ResetPassword)

		// course tree
		admin.GET("/courses", c.content.ListAllCourses)
		admin.POST("/courses", c.content.CreateCourse)
		admin.PUT("/courses/:id", c.content.UpdateCourse)
		admin.DELETE("/courses/:id", c.content.DeleteCourse)
		admin.POST("/units", c.content.CreateUnit)
		admin.PUT("/units/:id", c.content.UpdateUnit)
		admin.DELETE("/units/:id", c.content.DeleteUnit)
		admin.POST("/lessons", c.content.CreateLesson)
		admin.PUT("/lessons/:id", c.content.UpdateLesson)
		admin.DELETE("/lessons/:id", c.content.DeleteLesson)
		admin.POST("/media", c.content.UploadMedia)

		// gamification catalogs
		admin.POST("/quests", c.admin.CreateQuest)
		admin.PUT("/quests/:id", c.admin.UpdateQuest)
		admin.POST("/achievements", c.admin.CreateAchievement)
		admin.POST("/items", c.admin.CreateItem)
		admin.PUT("/items/:id", c.admin.UpdateItem)
		admin.POST("/games", c.admin.CreateGame)
		admin.PUT("/games/:id", c.admin.UpdateGame)
		admin.POST("/handbook", c.admin.CreateCard)
		admin.PUT("/handbook/:id", c.admin.UpdateCard)
	}
}
