package app

import (
	"context"
	"lingoland_backend/internal/config"
	"lingoland_backend/internal/controller"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/service"
	"lingoland_backend/pkg/database"
	"lingoland_backend/pkg/logger"
	"lingoland_backend/pkg/monitoring"
	"lingoland_backend/pkg/security"
	"lingoland_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	completion  *repository.CompletionRepository
	milestone   *repository.MilestoneRepository
	quest       *repository.QuestRepository
	achievement *repository.AchievementRepository
	item        *repository.ItemRepository
	handbook    *repository.HandbookRepository
	checkin     *repository.CheckinRepository
	game        *repository.GameRepository
	purchase    *repository.PurchaseRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	reward       *service.RewardService
	course       *service.CourseService
	gamification *service.GamificationService
	shop         *service.ShopService
	inventory    *service.InventoryService
	handbook     *service.HandbookService
	practice     *service.PracticeService
	content      *service.ContentService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	gamification *controller.GamificationController
	shop         *controller.ShopController
	inventory    *controller.InventoryController
	handbook     *controller.HandbookController
	practice     *controller.PracticeController
	content      *controller.ContentController
	admin        *controller.AdminController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig is called by the config watcher on a file change.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		completion:  repository.NewCompletionRepository(db),
		milestone:   repository.NewMilestoneRepository(db),
		quest:       repository.NewQuestRepository(db),
		achievement: repository.NewAchievementRepository(db),
		item:        repository.NewItemRepository(db),
		handbook:    repository.NewHandbookRepository(db),
		checkin:     repository.NewCheckinRepository(db),
		game:        repository.NewGameRepository(db),
		purchase:    repository.NewPurchaseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.checkin)
	s.reward = service.NewRewardService(repos.user, repos.item, repos.handbook)
	s.course = service.NewCourseService(repos.course, repos.completion, repos.milestone, s.reward)
	s.gamification = service.NewGamificationService(
		repos.quest,
		repos.achievement,
		repos.completion,
		repos.game,
		repos.handbook,
		repos.user,
		s.reward,
		rdb,
	)
	s.shop = service.NewShopService(repos.item, repos.user, repos.purchase)
	s.inventory = service.NewInventoryService(repos.item, repos.user)
	s.handbook = service.NewHandbookService(repos.handbook)
	s.practice = service.NewPracticeService(repos.game, s.reward)
	s.content = service.NewContentService(repos.course, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user, s.gamification),
		user:         controller.NewUserController(s.user, s.storage),
		course:       controller.NewCourseController(s.course, s.gamification),
		gamification: controller.NewGamificationController(s.gamification),
		shop:         controller.NewShopController(s.shop),
		inventory:    controller.NewInventoryController(s.inventory),
		handbook:     controller.NewHandbookController(s.handbook),
		practice:     controller.NewPracticeController(s.practice, s.gamification),
		content:      controller.NewContentController(s.content),
		admin:        controller.NewAdminController(s.gamification, s.shop, s.practice, s.handbook),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	// keep the leaderboard snapshot warm
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.gamification.RefreshLeaderboardCache(); err != nil {
				logger.Log.Error("leaderboard refresh error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to run migrations", zap.Error(err))
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// redis is a cache here, the server still works without it
		logger.Log.Warn("Redis unavailable, leaderboard caching disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingoland-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
