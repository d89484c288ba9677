package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ecom/cmd"
	httpin "ecom/internal/adapters/in/http"
	amqpout "ecom/internal/adapters/out/amqp"
	"ecom/internal/adapters/out/jwtauth"
	"ecom/internal/adapters/out/postgres/accountrepo"
	"ecom/internal/adapters/out/postgres/customerrepo"
	"ecom/internal/adapters/out/postgres/invoicerepo"
	"ecom/internal/adapters/out/postgres/orderrepo"
	"ecom/internal/adapters/out/postgres/productrepo"
	"ecom/internal/core/domain/model/account"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDatabaseIfNotExists(configs)
	gormDB := mustOpenGorm(configs)
	migrateSchema(gormDB)

	tokens, err := jwtauth.NewJwtTokenService(
		configs.JWTSecret, configs.AccessTokenTTL, configs.RefreshTokenTTL,
	)
	if err != nil {
		log.Fatalf("Invalid token configuration: %v", err)
	}

	hasher := jwtauth.NewBcryptPasswordHasher()
	publisher := createEventPublisher(configs)

	seedAdminAccount(gormDB, hasher, configs)

	app := cmd.NewCompositionRoot(configs, gormDB, tokens, hasher, publisher)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          envOrDefault("DB_USER", "postgres"),
		DBPassword:      envOrDefault("DB_PASSWORD", "password"),
		DBName:          envOrDefault("DB_NAME", "ecom"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:       envOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:  envDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: envDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		AdminEmail:      envOrDefault("ADMIN_EMAIL", "admin@example.com"),
		AdminName:       envOrDefault("ADMIN_NAME", "Administrator"),
		AdminPassword:   envOrDefault("ADMIN_PASSWORD", ""),
		AmqpURL:         envOrDefault("AMQP_URL", ""),
		AmqpQueue:       envOrDefault("AMQP_QUEUE", "order_events"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

// createDatabaseIfNotExists connects to the maintenance database and creates
// the application database when missing.
func createDatabaseIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database server: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName,
	).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		log.Infof("Created database %s", configs.DBName)
	}
}

func mustOpenGorm(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.LineDTO{},
		&invoicerepo.InvoiceDTO{},
		&accountrepo.AccountDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
}

func createEventPublisher(configs cmd.Config) ports.OrderEventPublisher {
	if configs.AmqpURL == "" {
		return ports.NoopOrderEventPublisher{}
	}

	publisher, err := amqpout.NewOrderEventPublisher(configs.AmqpURL, configs.AmqpQueue)
	if err != nil {
		log.Fatalf("Failed to connect to message broker: %v", err)
	}

	return publisher
}

// seedAdminAccount creates the bootstrap staff account on first start.
// Skipped when no admin password is configured or the account exists.
func seedAdminAccount(gormDB *gorm.DB, hasher ports.PasswordHasher, configs cmd.Config) {
	if configs.AdminPassword == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin account seeding")
		return
	}

	ctx := context.Background()
	repo := accountrepo.NewGormAccountRepository(gormDB)

	email, err := kernel.NewEmail(configs.AdminEmail)
	if err != nil {
		log.Fatalf("Invalid admin email: %v", err)
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Failed to check admin account: %v", err)
	}

	hashed, err := hasher.Hash(configs.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin, err := account.NewAccount(email, configs.AdminName, hashed)
	if err != nil {
		log.Fatalf("Failed to build admin account: %v", err)
	}

	if _, err := repo.Add(ctx, admin); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	log.Infof("Seeded admin account %s", configs.AdminEmail)
}

func startWebServer(app *cmd.CompositionRoot, tokens ports.TokenService, port string) {
	e := echo.New()
	e.Validator = httpin.NewCustomValidator()

	server := httpin.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e, httpin.NewAuthMiddleware(tokens))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
