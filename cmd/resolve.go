package cmd

import (
	"context"
	"fmt"

	"release-manager/core/config"
	"release-manager/core/database"
	"release-manager/core/logger"
	"release-manager/core/storage"
	"release-manager/feature/catalog"
	"release-manager/feature/catalog/models"
	"release-manager/feature/resolver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var resolveDayFlag int
var resolveTitleFlag string

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Probe the audio sources for a release day",
	Long: `Builds the catalog, then walks the candidate audio sources for the given
day in probe order and reports which one would be served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if resolveTitleFlag == "" && (resolveDayFlag < 1 || resolveDayFlag > catalog.DaysInYear) {
			return fmt.Errorf("--day must be between 1 and %d", catalog.DaysInYear)
		}

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

		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database export connection failed", zap.Error(err))
		} else {
			db = conn
		}

		catSvc := catalog.NewService(cfg.Catalog, cfg.Server, store, cfg.Storage.Bucket, db, logg)
		if _, err := catSvc.Build(ctx); err != nil {
			return fmt.Errorf("catalog build failed: %w", err)
		}

		var rel *models.Release
		if resolveTitleFlag != "" {
			rel = releaseByTitle(catSvc, resolveTitleFlag)
			if rel == nil {
				return fmt.Errorf("no release titled %q", resolveTitleFlag)
			}
		} else {
			found, ok := catSvc.ReleaseByDay(resolveDayFlag)
			if !ok {
				return fmt.Errorf("no release for day %d", resolveDayFlag)
			}
			rel = found
		}

		svc := resolver.NewService(cfg.Resolver, cfg.Storage, store, catSvc, logg)
		candidates, err := svc.Candidates(rel)
		if err != nil {
			return err
		}

		fmt.Printf("\n--- Audio Resolution: Day %d ---\n", rel.Day)
		fmt.Printf("Title:      %s\n", rel.Title)
		fmt.Printf("Date:       %s\n", rel.Date)
		fmt.Printf("Candidates: %d\n", len(candidates))
		fmt.Println("-------------------------------")

		resolved := false
		for i, c := range candidates {
			probeCtx, cancel := context.WithTimeout(ctx, cfg.Resolver.Timeout())
			err := svc.Probe(probeCtx, c)
			cancel()

			status := "\033[31mUNAVAILABLE\033[0m"
			if err == nil {
				status = "\033[32mOK\033[0m"
			}
			fmt.Printf("%2d. [%-6s] %s %s\n", i+1, c.Kind, status, c.URL)

			if err == nil && !resolved {
				resolved = true
			}
		}
		fmt.Println("-------------------------------")
		if !resolved {
			fmt.Println("No source available; playback would fail for this day.")
		}

		return nil
	},
}

// releaseByTitle walks the calendar for a normalized title match.
func releaseByTitle(svc *catalog.Service, title string) *models.Release {
	want := catalog.NormalizeTitle(title)
	for day := 1; day <= catalog.DaysInYear; day++ {
		rel, ok := svc.ReleaseByDay(day)
		if ok && catalog.NormalizeTitle(rel.Title) == want {
			return rel
		}
	}
	return nil
}

func init() {
	resolveCmd.Flags().IntVar(&resolveDayFlag, "day", 1, "absolute day of year (1-365)")
	resolveCmd.Flags().StringVar(&resolveTitleFlag, "title", "", "resolve by release title instead of day")
	RootCmd.AddCommand(resolveCmd)
}
