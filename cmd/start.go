package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"release-manager/core/config"
	"release-manager/core/database"
	"release-manager/core/loader"
	"release-manager/core/logger"
	"release-manager/core/middleware/auth"
	"release-manager/core/middleware/rayid"
	"release-manager/core/storage"

	"release-manager/feature/catalog"
	"release-manager/feature/newsletter"
	"release-manager/feature/resolver"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "release-manager/docs/swagger"
)

// @title Release Manager API
// @version 1.0
// @description API for the 365-day music release calendar.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the release manager server",
	Long:  `Builds the release catalog and starts the HTTP server with all enabled features.`,
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

		// 3. Connect to the library export (Optional)
		// The catalog can also read the complete dataset from its JSON export.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database export connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to library export", zap.String("path", cfg.Database.Path))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		catFeature := catalog.NewFeature(cfg.Catalog, cfg.Server, store, cfg.Storage.Bucket, db, logg)
		mgr.Register(catFeature)
		mgr.Register(resolver.NewFeature(cfg.Resolver, cfg.Storage, store, catFeature.Service(), logg))

		nlFeature, err := newsletter.NewFeature(cfg.Newsletter, logg)
		if err != nil {
			logg.Fatal("Failed to initialize newsletter feature", zap.Error(err))
		}
		mgr.Register(nlFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Build the catalog. The manifest and complete dataset are
		// mandatory; serving an empty calendar would be worse than failing.
		if _, err := catFeature.Service().Build(context.Background()); err != nil {
			logg.Fatal("Initial catalog build failed", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
