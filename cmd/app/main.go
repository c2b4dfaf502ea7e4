package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"orderdesk/cmd"
	inhttp "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/notify"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB, configs)

	notifier, err := notify.NewClient(configs.NotifyBaseURL, configs.NotifyToken)
	if err != nil {
		log.Fatalf("Failed to create notify client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notifier)

	jobManager := startJobs(&app, configs, notifier)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		NotifyBaseURL:  goDotEnvVariable("NOTIFY_BASE_URL"),
		NotifyToken:    goDotEnvVariable("NOTIFY_TOKEN"),
		AdminIDs:       parseAdminIDs(goDotEnvVariable("ADMIN_IDS")),
		DigestSchedule: goDotEnvVariable("DIGEST_SCHEDULE"),
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

// parseAdminIDs reads a comma separated list of staff user ids.
func parseAdminIDs(raw string) []int64 {
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Fatalf("Invalid admin id %q: %v", part, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB, configs cmd.Config) {
	err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{}, &userrepo.AdminDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := userrepo.EnsureAdmins(context.Background(), gormDB, configs.AdminIDs); err != nil {
		log.Fatalf("Failed to seed staff roster: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, notifier *notify.Client) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateGetOrdersByStatusQueryHandler(),
		configs.AdminIDs,
		notifier,
		configs.DigestSchedule,
		slog.Default(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := inhttp.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateAcceptAgreementCommandHandler(),
		app.CreateStartWizardCommandHandler(),
		app.CreateAdvanceWizardCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateFailOrderCommandHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderDetailsQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetStatsQueryHandler(),
		app.CreateGetProfileQueryHandler(),
		app.CreateCheckAdminQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
