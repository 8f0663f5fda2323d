package cmd

import (
	"fmt"

	"release-manager/core/config"
	"release-manager/core/database"
	"release-manager/core/logger"
	"release-manager/core/storage"
	"release-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var buildUploadFlag bool
var buildOutputFlag string

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the release catalog artifact",
	Long: `Runs the reconciliation pipeline offline: loads the manifest and every
available dataset, merges them into the release calendar, and writes the
catalog JSON artifact. With --upload the artifact is also published to the
storage bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// Library export connection is optional; the JSON export covers it.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database export connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc := catalog.NewService(cfg.Catalog, cfg.Server, store, cfg.Storage.Bucket, db, logg)

		cat, err := svc.Build(ctx)
		if err != nil {
			return fmt.Errorf("catalog build failed: %w", err)
		}

		output := buildOutputFlag
		if output == "" {
			output = cfg.Catalog.OutputPath
		}
		if err := svc.WriteArtifact(output); err != nil {
			return err
		}
		logg.Info("Catalog artifact written",
			zap.String("path", output),
			zap.Int("releases", cat.Stats.TotalReleases),
		)

		if buildUploadFlag {
			if err := svc.UploadArtifact(ctx); err != nil {
				return err
			}
			logg.Info("Catalog artifact uploaded", zap.String("object", catalog.ArtifactObjectName))
		}

		fmt.Printf("\n--- Catalog Build ---\n")
		fmt.Printf("Releases:     %d\n", cat.Stats.TotalReleases)
		fmt.Printf("Light tracks: %d\n", cat.Stats.LightTracks)
		fmt.Printf("Dark tracks:  %d\n", cat.Stats.DarkTracks)
		fmt.Printf("Error logs:   %d\n", cat.Stats.ErrorLogs)
		fmt.Printf("Artifact:     %s\n", output)
		fmt.Printf("---------------------\n")

		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildUploadFlag, "upload", false, "upload the artifact to the storage bucket")
	buildCmd.Flags().StringVarP(&buildOutputFlag, "output", "o", "", "artifact output path (defaults to catalog config)")
	RootCmd.AddCommand(buildCmd)
}
