package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"eats-backend/internal/config"
	"eats-backend/internal/infrastructure/cache"
	"eats-backend/internal/infrastructure/database"
	"eats-backend/internal/infrastructure/pubsub"
	"eats-backend/internal/infrastructure/storage"
	"eats-backend/pkg/jwt"

	orderHandler "eats-backend/internal/domains/order/handler"
	orderRepo "eats-backend/internal/domains/order/repository"
	orderService "eats-backend/internal/domains/order/service"
	paymentHandler "eats-backend/internal/domains/payment/handler"
	paymentRepo "eats-backend/internal/domains/payment/repository"
	paymentService "eats-backend/internal/domains/payment/service"
	restaurantHandler "eats-backend/internal/domains/restaurant/handler"
	restaurantRepo "eats-backend/internal/domains/restaurant/repository"
	restaurantService "eats-backend/internal/domains/restaurant/service"
	userHandler "eats-backend/internal/domains/user/handler"
	userRepo "eats-backend/internal/domains/user/repository"
	userService "eats-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================
// Container is the root of the dependency graph. Everything in it is
// a singleton living for the whole process.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	Bus         pubsub.Bus
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	UserRepo       userRepo.UserRepository
	RestaurantRepo restaurantRepo.RestaurantRepository
	OrderRepo      orderRepo.OrderRepository
	PaymentRepo    paymentRepo.PaymentRepository

	UserService       userService.UserService
	RestaurantService restaurantService.RestaurantService
	OrderService      orderService.OrderService
	PaymentService    paymentService.PaymentService

	UserHandler       *userHandler.Handler
	RestaurantHandler *restaurantHandler.Handler
	OrderHandler      *orderHandler.Handler
	PaymentHandler    *paymentHandler.Handler
}

// NewContainer builds the whole graph. Order matters: config first,
// then infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("database connected")

	redisCache := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// Listing just skips its cache and hits the database.
		log.Printf("redis connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.Bus = pubsub.NewInMemoryBus()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Host})

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.RestaurantRepo = restaurantRepo.NewPostgresRestaurantRepository(pool)
	c.OrderRepo = orderRepo.NewPostgresOrderRepository(pool)
	c.PaymentRepo = paymentRepo.NewPostgresPaymentRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.AsynqClient)
	c.RestaurantService = restaurantService.NewRestaurantService(c.RestaurantRepo, c.Cache)
	c.OrderService = orderService.NewOrderService(c.OrderRepo, c.RestaurantRepo, c.Bus)
	c.PaymentService = paymentService.NewPaymentService(c.PaymentRepo, c.RestaurantRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.RestaurantHandler = restaurantHandler.NewHandler(c.RestaurantService, c.Storage)
	c.OrderHandler = orderHandler.NewHandler(c.OrderService, c.Bus)
	c.PaymentHandler = paymentHandler.NewHandler(c.PaymentService)
}

// Cleanup releases external connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("failed to close asynq client: %v", err)
		}
	}
	if rc, ok := c.Cache.(*cache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			log.Printf("failed to close redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
