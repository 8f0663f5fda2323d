package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"release-manager/core/config"
	"release-manager/core/logger"
	"release-manager/core/storage"
	"release-manager/feature/catalog"
	"release-manager/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var manifestFromBucketFlag bool
var manifestOutputFlag string

// manifestCmd represents the manifest command
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Generate the release manifest",
	Long: `Scans the audio tree (local directories by default, the storage bucket
with --from-bucket) and writes the ordered release manifest JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		var manifest *models.Manifest
		if manifestFromBucketFlag {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			manifest, err = catalog.ScanBucket(cmd.Context(), store, cfg.Storage.Bucket)
			if err != nil {
				return fmt.Errorf("bucket scan failed: %w", err)
			}
		} else {
			manifest, err = catalog.ScanDir(cfg.Catalog.AudioDir, cfg.Catalog.CoverDir)
			if err != nil {
				return fmt.Errorf("directory scan failed: %w", err)
			}
		}

		output := manifestOutputFlag
		if output == "" {
			output = cfg.Catalog.ManifestPath
		}

		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}

		logg.Info("Manifest written",
			zap.String("path", output),
			zap.Int("items", len(manifest.Items)),
		)
		return nil
	},
}

func init() {
	manifestCmd.Flags().BoolVar(&manifestFromBucketFlag, "from-bucket", false, "scan the storage bucket instead of local directories")
	manifestCmd.Flags().StringVarP(&manifestOutputFlag, "output", "o", "", "manifest output path (defaults to catalog config)")
	RootCmd.AddCommand(manifestCmd)
}
