package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/application/common"
	companyApp "github.com/prism-finance/prism/internal/application/company"
	contractApp "github.com/prism-finance/prism/internal/application/contract"
	documentApp "github.com/prism-finance/prism/internal/application/document"
	conditionsApp "github.com/prism-finance/prism/internal/application/generalconditions"
	invoiceApp "github.com/prism-finance/prism/internal/application/invoice"
	notificationApp "github.com/prism-finance/prism/internal/application/notification"
	purchaseOrderApp "github.com/prism-finance/prism/internal/application/purchaseorder"
	supplierApp "github.com/prism-finance/prism/internal/application/supplier"
	templateApp "github.com/prism-finance/prism/internal/application/template"
	userApp "github.com/prism-finance/prism/internal/application/user"
	"github.com/prism-finance/prism/internal/domain/company"
	"github.com/prism-finance/prism/internal/domain/contract"
	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/infrastructure/auth"
	"github.com/prism-finance/prism/internal/infrastructure/config"
	"github.com/prism-finance/prism/internal/infrastructure/converter"
	"github.com/prism-finance/prism/internal/infrastructure/email"
	"github.com/prism-finance/prism/internal/infrastructure/messaging"
	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/infrastructure/pubsub"
	"github.com/prism-finance/prism/internal/infrastructure/repository"
	"github.com/prism-finance/prism/internal/infrastructure/scheduler"
	"github.com/prism-finance/prism/internal/infrastructure/storage"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
	shareddb "github.com/prism-finance/prism/internal/shared/db"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

type repositories struct {
	users          user.Repository
	companies      company.Repository
	suppliers      supplier.Repository
	documents      document.Repository
	templates      template.Repository
	contracts      contract.Repository
	notifications  notification.Repository
	purchaseOrders purchaseorder.Repository
	invoices       invoice.Repository
	conditions     generalconditions.Repository
	acceptances    generalconditions.AcceptanceRepository
}

type services struct {
	users          *userApp.ServiceDDD
	companies      *companyApp.Service
	suppliers      *supplierApp.Service
	documents      *documentApp.Service
	templates      *templateApp.Service
	contracts      *contractApp.Service
	purchaseOrders *purchaseOrderApp.Service
	invoices       *invoiceApp.Service
	conditions     *conditionsApp.Service
	notifications  *notificationApp.Service
	dispatcher     *notificationApp.Dispatcher
}

type allHandlers struct {
	health        *handlers.HealthHandler
	auth          *handlers.AuthHandler
	user          *handlers.UserHandler
	company       *handlers.CompanyHandler
	supplier      *handlers.SupplierHandler
	document      *handlers.DocumentHandler
	template      *handlers.TemplateHandler
	contract      *handlers.ContractHandler
	purchaseOrder *handlers.PurchaseOrderHandler
	invoice       *handlers.InvoiceHandler
	conditions    *handlers.ConditionsHandler
	notification  *handlers.NotificationHandler
}

// Container builds and owns every component of the server process.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when Redis is disabled

	repos *repositories
	svcs  *services
	hdlrs *allHandlers

	blobStore common.BlobStore
	converter *converter.HTMLConverter
	jwtSvc    *auth.JWTService
	enforcer  *permission.Enforcer

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *middleware.RateLimiter

	eventDispatcher  *events.InMemoryEventDispatcher
	kafkaProducer    *messaging.KafkaNotificationProducer
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires the process. Nothing is started until Start is called.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initServices()
	c.initEventSinks()
	if err := c.initScheduler(); err != nil {
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

// initInfrastructure sets up Redis, repositories, storage, auth and permissions.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db, c.log)

	store, err := storage.NewBlobStore(cfg.Storage, logger.WithComponent("storage"))
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	c.blobStore = store
	c.converter = converter.NewHTMLConverter(logger.WithComponent("converter"))

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours)

	enforcer, err := permission.NewEnforcer(c.db, logger.WithComponent("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	if c.redis != nil {
		c.loginLimiter = middleware.NewRateLimiter(c.redis, "login", loginRateLimit, loginRateWindow, c.log)
	}

	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return client, nil
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		users:          repository.NewUserRepository(db, log),
		companies:      repository.NewCompanyRepository(db),
		suppliers:      repository.NewSupplierRepository(db),
		documents:      repository.NewDocumentRepository(db),
		templates:      repository.NewTemplateRepository(db),
		contracts:      repository.NewContractRepository(db),
		notifications:  repository.NewNotificationRepository(db),
		purchaseOrders: repository.NewPurchaseOrderRepository(db),
		invoices:       repository.NewInvoiceRepository(db),
		conditions:     repository.NewGeneralConditionsRepository(db),
		acceptances:    repository.NewAcceptanceRepository(db),
	}
}

// initServices builds the application services around the notification
// dispatcher, which every state-changing service reports to.
func (c *Container) initServices() {
	cfg := c.cfg
	repos := c.repos

	c.eventDispatcher = events.NewInMemoryEventDispatcher(cfg.Notification.EventBufferSize, logger.WithComponent("events"))

	dispatcher := notificationApp.NewDispatcher(
		repos.users, repos.notifications, c.eventDispatcher, logger.WithComponent("notification.dispatcher"),
	)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	txMgr := shareddb.NewTransactionManager(c.db)
	conditions := conditionsApp.NewService(repos.conditions, repos.acceptances, repos.suppliers, c.converter, txMgr, dispatcher, c.log)

	c.svcs = &services{
		users:      userApp.NewServiceDDD(repos.users, repos.suppliers, hasher, c.jwtSvc, c.log),
		companies:  companyApp.NewService(repos.companies, c.log),
		suppliers:  supplierApp.NewService(repos.suppliers, dispatcher, c.log),
		documents:  documentApp.NewService(repos.documents, repos.suppliers, c.blobStore, dispatcher, c.log),
		templates:  templateApp.NewService(repos.templates, repos.contracts, txMgr, c.blobStore, c.converter, c.log),
		conditions: conditions,
		dispatcher: dispatcher,
		contracts: contractApp.NewService(contractApp.ServiceDeps{
			Contracts:       repos.contracts,
			Templates:       repos.templates,
			Suppliers:       repos.suppliers,
			Store:           c.blobStore,
			Converter:       c.converter,
			Notifier:        dispatcher,
			ExpiryBatchSize: cfg.Scheduler.ExpiryBatchSize,
		}, c.log),
		purchaseOrders: purchaseOrderApp.NewService(repos.purchaseOrders, repos.suppliers, dispatcher, c.log),
		invoices:       invoiceApp.NewService(repos.invoices, repos.suppliers, repos.purchaseOrders, conditions, c.blobStore, dispatcher, c.log),
		notifications:  notificationApp.NewService(repos.notifications, c.log),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.svcs.users, c.log)
}

// initEventSinks subscribes the configured outbound channels to
// notification.created events.
func (c *Container) initEventSinks() {
	cfg := c.cfg

	subscribe := func(name string, handler events.EventHandler) {
		if err := c.eventDispatcher.Subscribe(notification.EventTypeCreated, handler); err != nil {
			c.log.Errorw("failed to subscribe notification sink", "sink", name, "error", err)
			return
		}
		c.log.Infow("notification sink enabled", "sink", name)
	}

	if cfg.Email.Enabled {
		emailSvc := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		}, logger.WithComponent("email"))
		subscribe("email", emailSvc.Handler())
	}

	if c.redis != nil {
		publisher := pubsub.NewRedisNotificationPublisher(c.redis, logger.WithComponent("pubsub"))
		subscribe("redis", publisher.Handler())
	}

	if cfg.Kafka.Enabled {
		topic := cfg.Kafka.Topic
		if topic == "" {
			topic = messaging.DefaultNotificationTopic
		}
		writer := messaging.NewKafkaWriter(cfg.Kafka.Brokers, topic, logger.WithComponent("kafka"))
		c.kafkaProducer = messaging.NewKafkaNotificationProducer(writer, logger.WithComponent("kafka"))
		subscribe("kafka", c.kafkaProducer.Handler())
	}
}

func (c *Container) initScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(logger.WithComponent("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	interval := time.Duration(c.cfg.Scheduler.ExpiryIntervalMinutes) * time.Minute
	if err := manager.RegisterContractExpiryJob(scheduler.BatchJobFunc(c.svcs.contracts.ExpireDue), interval); err != nil {
		return fmt.Errorf("failed to register contract expiry job: %w", err)
	}

	c.schedulerManager = manager
	return nil
}

func (c *Container) initHandlers() {
	maxUpload := int64(c.cfg.Server.MaxUploadMB) << 20

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	c.hdlrs = &allHandlers{
		health:        handlers.NewHealthHandler(pinger, c.log),
		auth:          handlers.NewAuthHandler(c.svcs.users, c.log),
		user:          handlers.NewUserHandler(c.svcs.users, c.log),
		company:       handlers.NewCompanyHandler(c.svcs.companies, c.log),
		supplier:      handlers.NewSupplierHandler(c.svcs.suppliers, c.log),
		document:      handlers.NewDocumentHandler(c.svcs.documents, maxUpload, c.log),
		template:      handlers.NewTemplateHandler(c.svcs.templates, maxUpload, c.log),
		contract:      handlers.NewContractHandler(c.svcs.contracts, c.log),
		purchaseOrder: handlers.NewPurchaseOrderHandler(c.svcs.purchaseOrders, c.log),
		invoice:       handlers.NewInvoiceHandler(c.svcs.invoices, maxUpload, c.log),
		conditions:    handlers.NewConditionsHandler(c.svcs.conditions, c.log),
		notification:  handlers.NewNotificationHandler(c.svcs.notifications, c.log),
	}
}

// Start launches the background workers.
func (c *Container) Start() error {
	if err := c.eventDispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
	return nil
}

// Shutdown stops background workers, then closes outbound clients.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if err := c.eventDispatcher.Stop(); err != nil {
		c.log.Errorw("failed to stop event dispatcher", "error", err)
	}

	if c.kafkaProducer != nil {
		if err := c.kafkaProducer.Close(); err != nil {
			c.log.Errorw("failed to close kafka producer", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
