package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-paystack-wallet/docs"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/facades"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/handlers"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/services"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/txmanager"
	"github.com/sbilibin2017/gw-paystack-wallet/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const kafkaBatchTimeout = 5 * time.Millisecond

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	AppEnv   string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	OAuthStateTTL     time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	PaystackSecretKey     string
	PaystackWebhookSecret string
	PaystackBaseURL       string
	PaystackCallbackURL   string
	ProviderTimeout       time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// postgresDSN builds the connection string for the pgx driver.
func (c *config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title gw-paystack-wallet API
// @version 1.0.0
// @description Wallet service with Google sign-in, Paystack deposits, transfers and API keys
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, provider and auth configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var errs []error
	getInt := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}

	cfg := &config{
		// Application config
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		OAuthStateTTL:     getSeconds("OAUTH_STATE_TTL_SECOND", "600"),

		// Kafka config
		KafkaTopic: getEnv("KAFKA_TOPIC", "wallet-ledger"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:       getSeconds("JWT_EXP_SECOND", "604800"),

		// Google config
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),

		// Paystack config
		PaystackSecretKey:     getEnv("PAYSTACK_SECRET_KEY", ""),
		PaystackWebhookSecret: getEnv("PAYSTACK_WEBHOOK_SECRET", ""),
		PaystackBaseURL:       getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		PaystackCallbackURL:   getEnv("PAYSTACK_CALLBACK_URL", ""),
		ProviderTimeout:       getSeconds("PROVIDER_TIMEOUT_SECOND", "10"),

		// Rate limit config
		RateLimitBurst: getInt("RATE_LIMIT_BURST", "10"),
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
	}
	cfg.RateLimitRPS = rps

	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	if cfg.AppEnv == "production" && cfg.PaystackWebhookSecret == "" {
		errs = append(errs, errors.New("PAYSTACK_WEBHOOK_SECRET is required in production"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newKafkaWriter builds the ledger event writer. Events are published one at
// a time on the request path, so the batch is flushed almost immediately
// instead of waiting for kafka-go's one second default.
func newKafkaWriter(cfg *config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           kafkaBatchTimeout,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.AppEnv != "production"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.PaystackWebhookSecret == "" {
		logger.Log.Warn("PAYSTACK_WEBHOOK_SECRET is empty, webhook signatures are not verified")
	}

	// Apply migrations
	dsn := cfg.postgresDSN()
	if err := migrations.Up(dsn); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	logger.Log.Info("Database migrations applied")

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, ledger events are not published without brokers
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing ledger events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize JWT
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize facades
	google := facades.NewGoogleFacade(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL,
		facades.WithGoogleTimeout(cfg.ProviderTimeout),
	)
	paystack := facades.NewPaystackFacade(facades.PaystackConfig{
		BaseURL:       cfg.PaystackBaseURL,
		SecretKey:     cfg.PaystackSecretKey,
		WebhookSecret: cfg.PaystackWebhookSecret,
		CallbackURL:   cfg.PaystackCallbackURL,
		Timeout:       cfg.ProviderTimeout,
	})

	// Initialize repositories
	txm := txmanager.New(db)
	userRepo := repositories.NewUserRepository(db, txmanager.GetTxFromContext)
	walletRepo := repositories.NewWalletRepository(db, txmanager.GetTxFromContext)
	txnRepo := repositories.NewTransactionRepository(db, txmanager.GetTxFromContext)
	keyRepo := repositories.NewAPIKeyRepository(db, txmanager.GetTxFromContext)
	eventRepo := repositories.NewWebhookEventRepository(db, txmanager.GetTxFromContext)
	stateRepo := repositories.NewOAuthStateRepository(rdb, cfg.OAuthStateTTL)

	// Initialize services
	authService := services.NewAuthService(txm, google, stateRepo, userRepo, walletRepo, tokens)
	walletService := services.NewWalletService(txm, walletRepo, txnRepo, eventRepo, paystack, kafkaWriter)
	keyService := services.NewKeyService(txm, keyRepo, userRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	limiter := middlewares.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
	r.Route("/auth", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/google", handlers.NewGoogleAuthHandler(authService))
		r.Get("/google/callback", handlers.NewGoogleCallbackHandler(authService))
	})

	// Paystack authenticates with the signature header
	r.Post("/wallet/paystack/webhook", handlers.NewPaystackWebhookHandler(paystack, walletService))

	authMiddleware := middlewares.AuthMiddleware(tokens, keyService)
	r.Route("/wallet", func(r chi.Router) {
		r.Use(authMiddleware)
		r.With(middlewares.RequirePermission(models.PermissionDeposit)).
			Post("/deposit", handlers.NewDepositHandler(walletService, middlewares.PrincipalFromContext))
		r.With(middlewares.RequirePermission(models.PermissionRead)).
			Get("/deposit/{reference}/status", handlers.NewDepositStatusHandler(walletService, middlewares.PrincipalFromContext))
		r.With(middlewares.RequirePermission(models.PermissionRead)).
			Get("/balance", handlers.NewBalanceHandler(walletService, middlewares.PrincipalFromContext))
		r.With(middlewares.RequirePermission(models.PermissionTransfer)).
			Post("/transfer", handlers.NewTransferHandler(walletService, middlewares.PrincipalFromContext))
		r.With(middlewares.RequirePermission(models.PermissionRead)).
			Get("/transactions", handlers.NewTransactionsHandler(walletService, middlewares.PrincipalFromContext))
	})

	r.Route("/keys", func(r chi.Router) {
		r.Use(authMiddleware, middlewares.RequireFullAccess)
		r.Post("/create", handlers.NewCreateKeyHandler(keyService, middlewares.PrincipalFromContext))
		r.Post("/rollover", handlers.NewRolloverKeyHandler(keyService, middlewares.PrincipalFromContext))
		r.Post("/revoke", handlers.NewRevokeKeyHandler(keyService, middlewares.PrincipalFromContext))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
