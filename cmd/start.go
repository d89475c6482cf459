package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partflow-sync/core/config"
	"partflow-sync/core/database"
	"partflow-sync/core/loader"
	"partflow-sync/core/logger"
	"partflow-sync/core/middleware/auth"
	"partflow-sync/core/middleware/rayid"
	"partflow-sync/core/sheets"
	"partflow-sync/core/storage"

	"partflow-sync/feature/export"
	"partflow-sync/feature/health"
	"partflow-sync/feature/syncer"
	"partflow-sync/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "partflow-sync/docs/swagger"
)

// @title PartFlow Sync API
// @version 1.2.0
// @description Sync bridge between the PartFlow mobile client and Google Sheets.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync bridge server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.HasApiKey() {
			logg.Warn("No API key configured, guarded routes will reject every request")
		}

		// 3. Connect to the user store (optional)
		userService := connectUsers(cmd.Context(), cfg, logg)

		// 4. Snapshot archive (optional)
		var archive syncer.Archive
		if cfg.Storage.Enabled {
			archive = connectArchive(cmd.Context(), cfg.Storage, logg)
		}

		// 5. Sheets client, built lazily on the first request
		provider := sheets.NewProvider(cfg.Sheets, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())
		app.Use(logger.Middleware(logg))
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CorsOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, " + cfg.Server.HeaderName(),
		}))

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		guard := auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Header: cfg.Server.HeaderName()})

		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(health.NewService(cfg.Sheets, provider, userService.db, cfg.Server.Version, logg)))
		mgr.Register(users.NewFeature(userService.service, cfg.Server.ApiKey, logg))
		mgr.Register(syncer.NewFeature(syncer.NewService(provider, archive, cfg.Sync, logg), guard, logg))
		mgr.Register(export.NewFeature(export.NewService(provider, logg), guard))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

type userStore struct {
	db      *gorm.DB
	service *users.Service
}

// connectUsers opens and migrates the user database. Failures leave both
// fields nil so /register and /login are not mounted.
func connectUsers(ctx context.Context, cfg *config.Config, logg *zap.Logger) userStore {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("User database unavailable", zap.Error(err))
		return userStore{}
	}
	if err := users.Migrate(db); err != nil {
		logg.Warn("User database migration failed", zap.Error(err))
		return userStore{db: db}
	}

	svc := users.NewService(users.NewRepository(db), logg)
	if err := svc.SeedAdmin(ctx, cfg.Auth); err != nil {
		logg.Warn("Failed to seed admin user", zap.Error(err))
	}
	logg.Info("Connected to user database", zap.String("driver", cfg.Database.Driver))
	return userStore{db: db, service: svc}
}

// connectArchive builds the snapshot archive. Failures disable snapshots.
func connectArchive(ctx context.Context, cfg storage.Config, logg *zap.Logger) syncer.Archive {
	client, err := storage.NewClient(cfg)
	if err != nil {
		logg.Warn("Snapshot storage unavailable", zap.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		logg.Warn("Snapshot bucket unavailable", zap.Error(err))
		return nil
	}

	logg.Info("Snapshot archive ready", zap.String("bucket", cfg.Bucket))
	return syncer.NewMinioArchive(client, cfg.Bucket)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
