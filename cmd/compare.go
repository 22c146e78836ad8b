package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vendor-rates/core/config"
	"vendor-rates/core/database"
	"vendor-rates/core/logger"
	"vendor-rates/feature/rates"
	"vendor-rates/feature/rates/master"
	"vendor-rates/feature/rates/output"
	"vendor-rates/feature/rates/vendor"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareVendor string
	compareFiles  []string
	compareOut    string
)

// compareCmd runs a single reconciliation locally, without the server.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare one vendor rate sheet against master data",
	Long: `Compare reads vendor rate sheets from disk, joins them against the
master routing data and writes the resulting rate file as CSV.

The server-side pipeline archives results and mails them out; this
command writes to a local file instead, which is handy when checking
a new sheet layout or debugging a vendor's numbers.

Examples:
  # Single-workbook vendor
  compare --vendor "Arelion" --file rates.xlsx

  # Multi-file vendor, one file per sheet in declared order
  compare --vendor "Qxtel" --file prices.xlsx --file newprice.xlsx --file origins.xlsx

  # Explicit output path
  compare --vendor "Sunrise" --file rates.xlsx --out sunrise-july.csv`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareVendor, "vendor", "", "Vendor name (display name or keyword)")
	compareCmd.Flags().StringArrayVar(&compareFiles, "file", nil, "Rate sheet file; repeat for multi-file vendors")
	compareCmd.Flags().StringVar(&compareOut, "out", "", "Output CSV path (default <vendor>.csv)")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if compareVendor == "" || len(compareFiles) == 0 {
		return fmt.Errorf("--vendor and at least one --file are required")
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	desc, ok := vendor.Find(compareVendor)
	if !ok {
		return fmt.Errorf("unknown vendor %q", compareVendor)
	}

	uploads := make([]rates.Upload, 0, len(compareFiles))
	for _, path := range compareFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		uploads = append(uploads, rates.Upload{Name: filepath.Base(path), Data: data})
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := master.NewRepository(db)
	// TTL 0 disables caching; a one-shot run always reads fresh data.
	cache := master.NewCache(repo, 0)

	// Neither storage nor mail is touched on this path; the result goes
	// to a local file.
	svc := rates.NewService(cache, repo, nil, "", nil, l, cfg.Rates)

	if err := svc.ValidateUploads(desc, uploads); err != nil {
		return err
	}

	l.Info("Running comparison", zap.String("vendor", desc.Key), zap.Int("files", len(uploads)))
	start := time.Now()

	records, err := svc.Reconcile(ctx, desc, uploads)
	if err != nil {
		return err
	}

	out := compareOut
	if out == "" {
		out = desc.Key + ".csv"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := output.WriteCSV(f, records, desc.Decimals); err != nil {
		return err
	}

	l.Info("Comparison written",
		zap.Int("records", len(records)),
		zap.String("out", out),
		zap.Duration("duration", time.Since(start)))
	return nil
}
