package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"paneltrack/cmd"
	httpserver "paneltrack/internal/adapters/in/http"
	"paneltrack/internal/adapters/out/postgres/auditrepo"
	"paneltrack/internal/adapters/out/postgres/inspectionrepo"
	"paneltrack/internal/adapters/out/postgres/orderrepo"
	"paneltrack/internal/adapters/out/postgres/palletrepo"
	"paneltrack/internal/adapters/out/postgres/panelrepo"
	"paneltrack/internal/adapters/out/postgres/rulesrepo"
	"paneltrack/internal/adapters/out/rediscache"
	"paneltrack/internal/core/application/progress"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, gormDB, createProgressCache(configs), logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:  goDotEnvVariable("REDIS_ADDR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&panelrepo.PanelDTO{},
		&panelrepo.StationPassDTO{},
		&inspectionrepo.InspectionDTO{},
		&palletrepo.PalletDTO{},
		&palletrepo.PalletAssignmentDTO{},
		&auditrepo.ClosureRecordDTO{},
		&rulesrepo.RuleSetDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate the database schema: %v", err)
	}

	return gormDB
}

func createProgressCache(configs cmd.Config) progress.Cache {
	if configs.RedisAddr == "" {
		return progress.NewMemoryCache()
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	return rediscache.NewCache(client)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	assessHandler, err := app.CreateAssessClosureReadinessQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build readiness query handler: %v", err)
	}

	progressHandler, err := app.CreateGetOrderProgressQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build progress query handler: %v", err)
	}

	server := httpserver.NewServer(httpserver.Handlers{
		CreateOrder:      app.CreateCreateOrderCommandHandler(),
		RecordScan:       app.CreateRecordScanCommandHandler(),
		RecordInspection: app.CreateRecordInspectionCommandHandler(),
		ReworkPanel:      app.CreateReworkPanelCommandHandler(),
		CloseOrder:       app.CreateCloseOrderCommandHandler(),
		RollbackClosure:  app.CreateRollbackClosureCommandHandler(),
		UpdateRules:      app.CreateUpdateClosureRulesCommandHandler(),

		AssessReadiness: assessHandler,
		OrderProgress:   progressHandler,
		AuditHistory:    app.CreateGetClosureAuditHistoryQueryHandler(),
		ClosureRules:    app.CreateGetClosureRulesQueryHandler(),

		ProgressInvalidator: app.ProgressAggregator(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
