package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"quizowl/internal/config"
	"quizowl/internal/database"
	"quizowl/internal/logger"
	"quizowl/internal/repository"
	"quizowl/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: journal_YYYYMMDD_HHMMSS.json)")
	exportFilter := filterFlags(exportCmd)

	// Stats flags
	statsFilter := filterFlags(statsCmd)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg)
	defer log.Sync()

	ctx := context.Background()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		filter, err := exportFilter.build()
		if err != nil {
			log.Fatal("invalid flags", zap.Error(err))
		}
		handleExport(ctx, openJournal(ctx, cfg, log), *exportOutput, filter, log)

	case "stats":
		statsCmd.Parse(os.Args[2:])
		filter, err := statsFilter.build()
		if err != nil {
			log.Fatal("invalid flags", zap.Error(err))
		}
		handleStats(ctx, openJournal(ctx, cfg, log), filter, log)

	default:
		printUsage()
		os.Exit(1)
	}
}

type journalFlags struct {
	child     *string
	incorrect *bool
	since     *string
	limit     *int
}

func filterFlags(fs *flag.FlagSet) journalFlags {
	return journalFlags{
		child:     fs.String("child", "", "Only entries of this child ID"),
		incorrect: fs.Bool("incorrect", false, "Only incorrect answers"),
		since:     fs.String("since", "", "Only answers on or after this date (YYYY-MM-DD)"),
		limit:     fs.Int("limit", 0, "Maximum number of entries, 0 for all"),
	}
}

func (f journalFlags) build() (repository.JournalFilter, error) {
	filter := repository.JournalFilter{
		ChildID:       *f.child,
		IncorrectOnly: *f.incorrect,
		Limit:         *f.limit,
	}
	if *f.since != "" {
		since, err := time.Parse(time.DateOnly, *f.since)
		if err != nil {
			return filter, fmt.Errorf("invalid -since date %q: %w", *f.since, err)
		}
		filter.Since = since
	}
	if filter.Limit < 0 {
		return filter, fmt.Errorf("-limit must not be negative")
	}
	return filter, nil
}

// openJournal connects to the journal database and brings its schema up to date
func openJournal(ctx context.Context, cfg *config.Config, log *zap.Logger) *service.JournalService {
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	if err := db.RunMigrations(ctx, cfg.MigrationsPath, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	return service.NewJournalService(repository.NewJournalRepository(db), cfg.DatabaseType)
}

func handleExport(ctx context.Context, journal *service.JournalService, outputPath string, filter repository.JournalFilter, log *zap.Logger) {
	// Generate default filename if not provided
	if outputPath == "" {
		outputPath = fmt.Sprintf("journal_%s.json", time.Now().Format("20060102_150405"))
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("failed to create output directory", zap.Error(err))
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatal("failed to create output file", zap.Error(err))
	}
	defer file.Close()

	log.Info("exporting answer journal", zap.String("output", outputPath))
	count, err := journal.Export(ctx, file, filter)
	if err != nil {
		log.Fatal("export failed", zap.Error(err))
	}

	fields := []zap.Field{zap.Int("entries", count)}
	if info, err := file.Stat(); err == nil {
		fields = append(fields, zap.Int64("bytes", info.Size()))
	}
	log.Info("export complete", fields...)
}

func handleStats(ctx context.Context, journal *service.JournalService, filter repository.JournalFilter, log *zap.Logger) {
	stats, err := journal.Stats(ctx, filter)
	if err != nil {
		log.Fatal("failed to compute stats", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stats); err != nil {
		log.Fatal("failed to write stats", zap.Error(err))
	}
}

func printUsage() {
	fmt.Println("QuizOwl Answer Journal Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  journal export [options]    Export journaled answers to a JSON file")
	fmt.Println("  journal stats [options]     Print per-child statistics as JSON")
	fmt.Println()
	fmt.Println("Options (both commands):")
	fmt.Println("  -child <id>       Only entries of this child ID")
	fmt.Println("  -incorrect        Only incorrect answers")
	fmt.Println("  -since <date>     Only answers on or after this date (YYYY-MM-DD)")
	fmt.Println("  -limit <n>        Maximum number of entries")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: journal_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE          Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./quizowl.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  MIGRATIONS_PATH  Migrations directory (default: ./migrations)")
}
