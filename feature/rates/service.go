package rates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vendor-rates/core/storage"
	"vendor-rates/feature/rates/compare"
	"vendor-rates/feature/rates/master"
	"vendor-rates/feature/rates/output"
	"vendor-rates/feature/rates/sheet"
	"vendor-rates/feature/rates/vendor"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MasterData provides the routing reference table runs are reconciled
// against. Implemented by the master cache.
type MasterData interface {
	MasterData(ctx context.Context) ([]master.Record, error)
}

// SheetLimits provides the per-vendor cap on spreadsheet lines read.
type SheetLimits interface {
	MaxRows(ctx context.Context, vendor string) (int, error)
}

// Reporter notifies the requester when a run finishes. detail is the
// archived object on success or the failure cause otherwise; attachment
// is a local file path, empty when there is nothing to attach.
type Reporter interface {
	Report(ctx context.Context, to, vendor string, success bool, detail, attachment string) error
}

// Service runs vendor rate-sheet reconciliations.
type Service struct {
	data     MasterData
	limits   SheetLimits
	client   storage.Client
	bucket   string
	reporter Reporter
	logger   *zap.Logger
	cfg      Config
}

// NewService creates a new rates service.
func NewService(data MasterData, limits SheetLimits, client storage.Client, bucket string, reporter Reporter, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		data:     data,
		limits:   limits,
		client:   client,
		bucket:   bucket,
		reporter: reporter,
		logger:   logger,
		cfg:      cfg,
	}
}

// ValidateUploads checks an upload set against the vendor's declared
// shape before any work is scheduled.
func (s *Service) ValidateUploads(desc vendor.Descriptor, uploads []Upload) error {
	want := 1
	if desc.Shape == vendor.ShapeFiles {
		want = len(desc.Sheets)
	}
	if len(uploads) != want {
		return configErrorf("%s expects %d file(s), got %d", desc.DisplayName, want, len(uploads))
	}

	for _, u := range uploads {
		ext := strings.ToLower(filepath.Ext(u.Name))
		if ext != ".xlsx" && ext != ".xls" {
			return configErrorf("unsupported file %q, expected an Excel workbook", u.Name)
		}
		if len(u.Data) == 0 {
			return configErrorf("uploaded file %q is empty", u.Name)
		}
	}
	return nil
}

// Reconcile runs one comparison synchronously and returns the output
// records. Submit is the background variant that also archives and
// notifies.
func (s *Service) Reconcile(ctx context.Context, desc vendor.Descriptor, uploads []Upload) ([]compare.Record, error) {
	if err := s.ValidateUploads(desc, uploads); err != nil {
		return nil, err
	}

	sheets, err := s.readSheets(ctx, desc, uploads)
	if err != nil {
		return nil, err
	}

	rows, err := s.data.MasterData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load master data: %w", err)
	}
	masterRows := filterMaster(rows, desc.MasterName)

	for _, name := range desc.Sheets {
		if len(sheets[name]) == 0 {
			return nil, &IncompleteDataError{What: fmt.Sprintf("sheet %s", name)}
		}
	}
	if len(masterRows) == 0 {
		return nil, &IncompleteDataError{What: fmt.Sprintf("master data for %s", desc.DisplayName)}
	}

	return compare.Reconcile(desc.Strategy, sheets, masterRows)
}

// Submit schedules a run in the background and returns immediately. The
// outcome reaches the requester by email; jobID ties the logs, the
// archived object and the report together.
func (s *Service) Submit(desc vendor.Descriptor, jobID, email string, uploads []Upload) {
	go s.Process(context.Background(), desc, jobID, email, uploads)
}

// Process runs one reconciliation end to end: compare, render, archive,
// notify. It never returns an error; failures are logged and reported to
// the requester.
func (s *Service) Process(ctx context.Context, desc vendor.Descriptor, jobID, email string, uploads []Upload) {
	l := s.logger.With(zap.String("vendor", desc.Key), zap.String("job_id", jobID))
	start := time.Now()
	l.Info("Reconciliation started", zap.Int("files", len(uploads)))

	records, err := s.Reconcile(ctx, desc, uploads)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		s.report(ctx, l, email, desc.DisplayName, false, err.Error(), "")
		return
	}

	object, path, err := s.archive(ctx, desc, jobID, records)
	if err != nil {
		l.Error("Failed to archive rate file", zap.Error(err))
		s.report(ctx, l, email, desc.DisplayName, false, err.Error(), "")
		return
	}
	defer os.Remove(path)

	l.Info("Reconciliation completed",
		zap.Int("records", len(records)),
		zap.String("object", object),
		zap.Duration("duration", time.Since(start)))
	s.report(ctx, l, email, desc.DisplayName, true, object, path)
}

// readSheets loads every declared sheet from the upload set. Workbook
// vendors carry all sheets in the one file; file-per-sheet vendors map
// uploads onto the declared sheet order.
func (s *Service) readSheets(ctx context.Context, desc vendor.Descriptor, uploads []Upload) (compare.Sheets, error) {
	schemas, ok := sheet.Schemas(desc.Key)
	if !ok {
		return nil, configErrorf("no sheet layouts registered for %s", desc.DisplayName)
	}

	maxRows, err := s.limits.MaxRows(ctx, desc.DisplayName)
	if err != nil {
		// The limit is a reading hint. A run is worth more than the hint,
		// so fall back to unlimited.
		s.logger.Warn("Failed to load sheet limit, reading unlimited",
			zap.String("vendor", desc.Key), zap.Error(err))
		maxRows = 0
	}

	sheets := make(compare.Sheets, len(desc.Sheets))
	for i, name := range desc.Sheets {
		schema, ok := schemas[name]
		if !ok {
			return nil, configErrorf("no layout for sheet %s of %s", name, desc.DisplayName)
		}

		data := uploads[0].Data
		if desc.Shape == vendor.ShapeFiles {
			data = uploads[i].Data
		}

		rows, err := sheet.Read(bytes.NewReader(data), schema, maxRows)
		if errors.Is(err, sheet.ErrSheetNotFound) {
			return nil, configErrorf("%s upload: %v", desc.DisplayName, err)
		}
		if err != nil {
			return nil, err
		}
		sheets[name] = rows
	}
	return sheets, nil
}

// archive renders the records and stores the CSV twice: a staging file
// for the email attachment and the long-lived object in the rates
// bucket. The caller removes the staging file once the report is out.
func (s *Service) archive(ctx context.Context, desc vendor.Descriptor, jobID string, records []compare.Record) (string, string, error) {
	var buf bytes.Buffer
	if err := output.WriteCSV(&buf, records, desc.Decimals); err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(s.cfg.TempPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create staging dir: %w", err)
	}
	path := filepath.Join(s.cfg.TempPath, fmt.Sprintf("%s-%s.csv", desc.Key, jobID))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to stage rate file: %w", err)
	}

	object := fmt.Sprintf("%s/%s/%s.csv", s.cfg.Prefix, desc.Key, jobID)
	_, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(buf.Bytes()), int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to upload rate file: %w", err)
	}

	return object, path, nil
}

func (s *Service) report(ctx context.Context, l *zap.Logger, to, vendorName string, success bool, detail, attachment string) {
	if err := s.reporter.Report(ctx, to, vendorName, success, detail, attachment); err != nil {
		l.Warn("Failed to send report email", zap.String("to", to), zap.Error(err))
	}
}

// filterMaster narrows the shared table to one vendor and converts rows
// into the comparison input type. Matching is case-insensitive; the
// reference table carries historic casing.
func filterMaster(rows []master.Record, vendorName string) []compare.MasterRow {
	var out []compare.MasterRow
	for _, r := range rows {
		if !strings.EqualFold(r.Vendor, vendorName) {
			continue
		}
		out = append(out, compare.MasterRow{
			Vendor:      r.Vendor,
			OriginCode:  r.OriginCode,
			DestinyCode: r.DestinyCode,
			Destiny:     r.Destiny,
			Routing:     r.Routing,
			Origin:      r.Origin,
		})
	}
	return out
}
