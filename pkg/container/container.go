package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"vitrine-backend/internal/config"
	infraCache "vitrine-backend/internal/infrastructure/cache"
	"vitrine-backend/internal/infrastructure/database"
	"vitrine-backend/internal/infrastructure/seed"
	"vitrine-backend/internal/infrastructure/storage"
	"vitrine-backend/pkg/cache"
	"vitrine-backend/pkg/jwt"

	authHandler "vitrine-backend/internal/domains/auth/handler"
	authService "vitrine-backend/internal/domains/auth/service"
	contentHandler "vitrine-backend/internal/domains/content/handler"
	contentRepo "vitrine-backend/internal/domains/content/repository"
	contentService "vitrine-backend/internal/domains/content/service"
	dashboardHandler "vitrine-backend/internal/domains/dashboard/handler"
	dashboardService "vitrine-backend/internal/domains/dashboard/service"
	employeeHandler "vitrine-backend/internal/domains/employee/handler"
	employeeModel "vitrine-backend/internal/domains/employee/model"
	employeeService "vitrine-backend/internal/domains/employee/service"
	enterpriseHandler "vitrine-backend/internal/domains/enterprise/handler"
	enterpriseModel "vitrine-backend/internal/domains/enterprise/model"
	mediaHandler "vitrine-backend/internal/domains/media/handler"
	mediaService "vitrine-backend/internal/domains/media/service"
)

const (
	seedSourceStatic   = "static"
	seedSourcePostgres = "postgres"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process.
// Build order: config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config         *config.Config
	DB             *database.PostgresDB   // nil unless SEED_SOURCE=postgres
	Redis          *infraCache.RedisCache // nil when Redis is unreachable
	Cache          cache.Cache            // Redis, or in-process fallback
	Storage        *storage.MinIOStorage  // nil when MinIO is unreachable
	ImageProcessor *storage.ImageProcessor
	QueueClient    *asynq.Client // nil without Redis
	JWTManager     *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	Collections *contentRepo.Registry

	// ========================================
	// SERVICE LAYER
	// ========================================
	ContentService   contentService.ServiceInterface
	DashboardService dashboardService.ServiceInterface
	AuthService      authService.ServiceInterface
	EmployeeService  employeeService.ServiceInterface
	MediaService     mediaService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	ContentHandler   *contentHandler.ContentHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	AuthHandler      *authHandler.AuthHandler
	ProfileHandler   *enterpriseHandler.ProfileHandler
	EmployeeHandler  *employeeHandler.EmployeeHandler
	MediaHandler     *mediaHandler.MediaHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// Build wires the dependency graph from an explicit configuration.
// Redis and MinIO are optional: an empty host/endpoint or a failed
// connection only degrades the matching feature.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INFRASTRUCTURE
	// ========================================
	c.initCache(ctx)
	c.initStorage(ctx)
	c.initQueue()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	// ========================================
	// STEP 2: REPOSITORIES
	// ========================================
	if err := c.initRepositories(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	log.Info().Msg("Repositories initialized")

	// ========================================
	// STEP 3: SERVICES
	// ========================================
	c.initServices(ctx)
	log.Info().Msg("Services initialized")

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.initHandlers()
	log.Info().Msg("Handlers initialized")

	log.Info().Msg("DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initCache(ctx context.Context) {
	c.Cache = cache.NewMemoryCache()

	if c.Config.Redis.Host == "" {
		log.Warn().Msg("Redis disabled, using in-process cache")
		return
	}

	redisCache := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisCache.Connect(connectCtx); err != nil {
		// Redis failure is not critical: cache and revocations stay in-process
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), using in-process cache")
		_ = redisCache.Close()
		return
	}

	c.Redis = redisCache
	c.Cache = redisCache
}

func (c *Container) initStorage(ctx context.Context) {
	c.ImageProcessor = storage.NewImageProcessor()

	if c.Config.MinIO.Endpoint == "" {
		log.Warn().Msg("MinIO disabled, media uploads unavailable")
		return
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := storage.NewMinIOStorage(connectCtx, c.Config.MinIO)
	if err != nil {
		log.Warn().Err(err).Msg("MinIO connection failed (non-critical), media uploads unavailable")
		return
	}

	c.Storage = store
	log.Info().Str("bucket", c.Config.MinIO.Bucket).Msg("MinIO connected")
}

func (c *Container) initQueue() {
	if c.Redis == nil {
		log.Warn().Msg("Task queue disabled, image variants are built inline")
		return
	}

	c.QueueClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
}

// initRepositories loads the initial data and builds the six collection stores
func (c *Container) initRepositories(ctx context.Context) error {
	provider, err := c.seedProvider(ctx)
	if err != nil {
		return err
	}

	initial, err := provider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load initial data: %w", err)
	}

	registry, err := contentRepo.NewRegistry(initial)
	if err != nil {
		return fmt.Errorf("build collections: %w", err)
	}
	c.Collections = registry

	for _, snap := range registry.Snapshots() {
		log.Info().Str("category", string(snap.Category)).Int("items", snap.Len()).Msg("Collection ready")
	}
	return nil
}

func (c *Container) seedProvider(ctx context.Context) (seed.Provider, error) {
	switch c.Config.Seed.Source {
	case seedSourcePostgres:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		return seed.NewPostgresProvider(db.Pool, c.Config.Seed.Bootstrap), nil
	case seedSourceStatic:
		return seed.NewStaticProvider(), nil
	default:
		return nil, fmt.Errorf("unknown seed source %q", c.Config.Seed.Source)
	}
}

func (c *Container) initServices(ctx context.Context) {
	c.ContentService = contentService.NewContentService(c.Collections)

	c.DashboardService = dashboardService.NewDashboardService(c.Collections, c.Cache, c.Config.Dashboard.CacheTTL)
	// an overview cached by a previous process may describe other data
	c.DashboardService.Invalidate(ctx, "")
	c.ContentService.Subscribe(c.DashboardService.Invalidate)

	c.AuthService = authService.NewAuthService(c.JWTManager, c.Cache)
	c.EmployeeService = employeeService.NewEmployeeService(employeeModel.DefaultEmployees())

	// keep the interfaces nil (not typed-nil) when the backends are missing
	var store mediaService.ObjectStorage
	if c.Storage != nil {
		store = c.Storage
	}
	var queue mediaService.TaskEnqueuer
	if c.QueueClient != nil {
		queue = c.QueueClient
	}
	c.MediaService = mediaService.NewMediaService(store, c.ImageProcessor, queue)
}

func (c *Container) initHandlers() {
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.ProfileHandler = enterpriseHandler.NewProfileHandler(enterpriseModel.ProfileFromConfig(c.Config.Enterprise))
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
}

// Cleanup releases connections on shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close task queue client")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
