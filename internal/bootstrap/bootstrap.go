package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/collegehub/collegehub/internal/app/controllers"
	appRepos "github.com/collegehub/collegehub/internal/app/repositories"
	appRoutes "github.com/collegehub/collegehub/internal/app/routes"
	appServices "github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/config"
	"github.com/collegehub/collegehub/internal/db"
	appMiddleware "github.com/collegehub/collegehub/internal/middleware"
	"github.com/collegehub/collegehub/internal/pkg/logger"
	"github.com/collegehub/collegehub/internal/seed"
	"github.com/collegehub/collegehub/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AdminService      appServices.AdminService
	AuthService       appServices.AuthService
	StudentService    appServices.StudentService
	CourseService     appServices.CourseService
	DepartmentService appServices.DepartmentService
	FacultyService    appServices.FacultyService
	FeedbackService   appServices.FeedbackService

	AuthController       *appControllers.AuthController
	AdminController      *appControllers.AdminController
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	DepartmentController *appControllers.DepartmentController
	FacultyController    *appControllers.FacultyController
	FeedbackController   *appControllers.FeedbackController

	AccessGate   *appMiddleware.AccessGate
	Repos        *appRepos.Repositories
	SessionStore session.Store
	RedisClient  *redis.Client
	Logger       zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the MongoDB connection and provisions indexes.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.MongoDB.Database).Msg("Establishing database connection...")
	mdb, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout())
	defer cancel()
	if err := mdb.EnsureIndexes(ctx, cfg); err != nil {
		lgr.Error().Err(err).Msg("Failed to provision indexes")
		_ = mdb.Close(context.Background())
		return nil, err
	}
	lgr.Info().Msg("Collection indexes provisioned.")

	return mdb, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// session store.
func BuildDependencies(cfg *config.Config, mdb *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(mdb, cfg)

	idleTimeout := cfg.SessionIdleTimeout()
	if cfg.Redis.Enabled {
		deps.RedisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		deps.SessionStore = session.NewRedisStore(deps.RedisClient, idleTimeout)
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis session store")
	} else {
		deps.SessionStore = session.NewMemoryStore(idleTimeout)
		lgr.Info().Msg("Using in-memory session store")
	}

	deps.AdminService = appServices.NewAdminService(deps.Repos.Admins, lgr)
	deps.AuthService = appServices.NewAuthService(deps.AdminService, deps.SessionStore, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Students)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, deps.Repos.Students, lgr)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.Departments)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.Faculty)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.Feedback)

	deps.AccessGate = appMiddleware.NewAccessGate(deps.AuthService, cfg.Session.CookieName, appRoutes.LoginPath)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.AdminService, cfg.Session.CookieName, cfg.Session.Secure)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)

	return deps, nil
}

// SeedInitialData creates bootstrap records: the default admin when
// configured, and the starter catalog.
func SeedInitialData(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) {
	if cfg.Bootstrap.EnsureDefaultAdmin {
		err := deps.AdminService.EnsureDefaultAdmin(ctx,
			cfg.Bootstrap.AdminUsername,
			cfg.Bootstrap.AdminPassword,
			cfg.Bootstrap.AdminEmail,
		)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to ensure bootstrap admin, proceeding anyway...")
		}
	}

	if err := seed.CreateDefaultData(ctx, deps.DepartmentService, deps.CourseService, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(logger.With("http")))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.StudentController,
		deps.CourseController,
		deps.DepartmentController,
		deps.FacultyController,
		deps.FeedbackController,
		deps.AccessGate,
	)

	return router
}
