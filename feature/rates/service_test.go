package rates

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"vendor-rates/core/storage/mocks"
	"vendor-rates/feature/rates/master"
	"vendor-rates/feature/rates/vendor"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type fakeMaster struct {
	rows []master.Record
	err  error
}

func (f *fakeMaster) MasterData(ctx context.Context) ([]master.Record, error) {
	return f.rows, f.err
}

type fakeLimits struct {
	max int
	err error
}

func (f *fakeLimits) MaxRows(ctx context.Context, vendor string) (int, error) {
	return f.max, f.err
}

type reportCall struct {
	to         string
	vendor     string
	success    bool
	detail     string
	attachment string
}

type fakeReporter struct {
	mu    sync.Mutex
	calls []reportCall
}

func (f *fakeReporter) Report(ctx context.Context, to, vendor string, success bool, detail, attachment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, reportCall{to, vendor, success, detail, attachment})
	return nil
}

func (f *fakeReporter) last(t *testing.T) reportCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

type testSheet struct {
	name string
	// rows maps 1-based spreadsheet row numbers to cell values, so data
	// can sit at a vendor's declared start row without filler.
	rows map[int][]interface{}
}

func buildWorkbook(t *testing.T, sheets []testSheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for rowNum, cells := range s.rows {
			for j, v := range cells {
				cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(s.name, cell, v))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// arelionWorkbook builds a minimal Arelion delivery: one price row, one
// origin-priced override reachable through the origin definitions.
func arelionWorkbook(t *testing.T) []byte {
	t.Helper()
	return buildWorkbook(t, []testSheet{
		{name: "Rates", rows: map[int][]interface{}{
			28: {"UK Mobile", "44700", "0.05", "2024-01-01"},
		}},
		{name: "Origin Rates", rows: map[int][]interface{}{
			7: {"UK Mobile", "44700", "Y", "0.08", "2024-06-01"},
		}},
		{name: "Origin Definitions", rows: map[int][]interface{}{
			7: {"Y", "1"},
		}},
	})
}

func newTestService(t *testing.T, data MasterData, limits SheetLimits, client *mocks.Client, reporter Reporter) *Service {
	t.Helper()
	cfg := Config{
		CacheTTLSeconds: 30,
		TempPath:        t.TempDir(),
		Prefix:          "rates",
	}
	return NewService(data, limits, client, "rates-test", reporter, zap.NewNop(), cfg)
}

func arelionMaster() []master.Record {
	return []master.Record{
		{Vendor: "Arelion", OriginCode: "1", DestinyCode: "44", Destiny: "UK", Routing: "R1"},
		// Another vendor's rule, must be filtered out.
		{Vendor: "Sunrise", OriginCode: "31", DestinyCode: "44", Destiny: "UK", Routing: "NOPE"},
	}
}

func TestService_ValidateUploads(t *testing.T) {
	svc := newTestService(t, &fakeMaster{}, &fakeLimits{}, new(mocks.Client), &fakeReporter{})
	arelion, ok := vendor.Get("arelion")
	require.True(t, ok)
	qxtel, ok := vendor.Get("qxtel")
	require.True(t, ok)

	tests := []struct {
		name    string
		desc    vendor.Descriptor
		uploads []Upload
		wantErr string
	}{
		{
			name:    "workbook vendor with one file",
			desc:    arelion,
			uploads: []Upload{{Name: "rates.xlsx", Data: []byte("x")}},
		},
		{
			name:    "workbook vendor with two files",
			desc:    arelion,
			uploads: []Upload{{Name: "a.xlsx", Data: []byte("x")}, {Name: "b.xlsx", Data: []byte("x")}},
			wantErr: "expects 1 file",
		},
		{
			name: "multi-file vendor with three files",
			desc: qxtel,
			uploads: []Upload{
				{Name: "prices.xlsx", Data: []byte("x")},
				{Name: "newprice.xls", Data: []byte("x")},
				{Name: "origins.xlsx", Data: []byte("x")},
			},
		},
		{
			name:    "multi-file vendor with one file",
			desc:    qxtel,
			uploads: []Upload{{Name: "prices.xlsx", Data: []byte("x")}},
			wantErr: "expects 3 file",
		},
		{
			name:    "wrong extension",
			desc:    arelion,
			uploads: []Upload{{Name: "rates.csv", Data: []byte("x")}},
			wantErr: "unsupported file",
		},
		{
			name:    "empty file",
			desc:    arelion,
			uploads: []Upload{{Name: "rates.xlsx", Data: nil}},
			wantErr: "is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateUploads(tt.desc, tt.uploads)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var ce *ConfigError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

// TestService_ReconcileEndToEnd runs a full Arelion comparison through the
// reader and the strategy: the routed override and the un-routed base row
// both come out, sorted with the un-routed row first.
func TestService_ReconcileEndToEnd(t *testing.T) {
	svc := newTestService(t, &fakeMaster{rows: arelionMaster()}, &fakeLimits{}, new(mocks.Client), &fakeReporter{})
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	records, err := svc.Reconcile(context.Background(), desc, []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "44700", records[0].DialCode)
	assert.Equal(t, "UK Mobile", records[0].Destination)
	assert.Equal(t, "", records[0].OriginLabel)
	assert.Equal(t, "0.05", records[0].Price.String())
	assert.Equal(t, "2024-01-01", records[0].EffectiveDate)

	assert.Equal(t, "44700", records[1].DialCode)
	assert.Equal(t, "R1", records[1].OriginLabel)
	assert.Equal(t, "0.08", records[1].Price.String())
	assert.Equal(t, "2024-06-01", records[1].EffectiveDate)
}

func TestService_ReconcileNoMasterRows(t *testing.T) {
	data := &fakeMaster{rows: []master.Record{
		{Vendor: "Sunrise", OriginCode: "31", DestinyCode: "44", Destiny: "UK", Routing: "X"},
	}}
	svc := newTestService(t, data, &fakeLimits{}, new(mocks.Client), &fakeReporter{})
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	_, err := svc.Reconcile(context.Background(), desc, []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})
	require.Error(t, err)

	var ie *IncompleteDataError
	require.True(t, errors.As(err, &ie))
	assert.Contains(t, err.Error(), "master data")
}

func TestService_ReconcileEmptySheet(t *testing.T) {
	// All declared sheets exist but the price list has no data rows.
	book := buildWorkbook(t, []testSheet{
		{name: "Rates", rows: map[int][]interface{}{1: {"Destination"}}},
		{name: "Origin Rates", rows: map[int][]interface{}{7: {"UK", "44700", "Y", "0.08", "2024-06-01"}}},
		{name: "Origin Definitions", rows: map[int][]interface{}{7: {"Y", "1"}}},
	})

	svc := newTestService(t, &fakeMaster{rows: arelionMaster()}, &fakeLimits{}, new(mocks.Client), &fakeReporter{})
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	_, err := svc.Reconcile(context.Background(), desc, []Upload{{Name: "a.xlsx", Data: book}})
	require.Error(t, err)

	var ie *IncompleteDataError
	require.True(t, errors.As(err, &ie))
	assert.Contains(t, err.Error(), "price_list")
}

func TestService_ReconcileMissingSheet(t *testing.T) {
	book := buildWorkbook(t, []testSheet{
		{name: "Rates", rows: map[int][]interface{}{28: {"UK", "44700", "0.05", "2024-01-01"}}},
	})

	svc := newTestService(t, &fakeMaster{rows: arelionMaster()}, &fakeLimits{}, new(mocks.Client), &fakeReporter{})
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	_, err := svc.Reconcile(context.Background(), desc, []Upload{{Name: "a.xlsx", Data: book}})
	require.Error(t, err)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, err.Error(), "sheet not found")
}

func TestService_ReconcileMasterSourceError(t *testing.T) {
	svc := newTestService(t, &fakeMaster{err: assert.AnError}, &fakeLimits{}, new(mocks.Client), &fakeReporter{})
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	_, err := svc.Reconcile(context.Background(), desc, []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load master data")
}

// TestService_ReconcileLimitErrorReadsUnlimited keeps the run alive when
// the sheet-limit lookup fails: the hint is dropped, not the upload.
func TestService_ReconcileLimitErrorReadsUnlimited(t *testing.T) {
	svc := newTestService(t, &fakeMaster{rows: arelionMaster()}, &fakeLimits{err: assert.AnError}, new(mocks.Client), &fakeReporter{})
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	records, err := svc.Reconcile(context.Background(), desc, []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestService_ProcessArchivesAndReports(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "rates-test", "rates/arelion/job-1.csv",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	reporter := &fakeReporter{}
	svc := newTestService(t, &fakeMaster{rows: arelionMaster()}, &fakeLimits{}, client, reporter)
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	svc.Process(context.Background(), desc, "job-1", "billing@example.com", []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})

	client.AssertExpectations(t)

	call := reporter.last(t)
	assert.Equal(t, "billing@example.com", call.to)
	assert.Equal(t, "Arelion", call.vendor)
	assert.True(t, call.success)
	assert.Equal(t, "rates/arelion/job-1.csv", call.detail)
	assert.True(t, strings.HasSuffix(call.attachment, "arelion-job-1.csv"))

	// The staged file is gone once the report is out.
	_, err := os.Stat(filepath.Join(svc.cfg.TempPath, "arelion-job-1.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_ProcessReportsFailure(t *testing.T) {
	client := new(mocks.Client)
	reporter := &fakeReporter{}
	// No master rows for the vendor, so the run fails before archiving.
	svc := newTestService(t, &fakeMaster{}, &fakeLimits{}, client, reporter)
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	svc.Process(context.Background(), desc, "job-2", "billing@example.com", []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})

	call := reporter.last(t)
	assert.False(t, call.success)
	assert.Contains(t, call.detail, "no usable rows")
	assert.Empty(t, call.attachment)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ProcessUploadErrorReportsFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "rates-test", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

	reporter := &fakeReporter{}
	svc := newTestService(t, &fakeMaster{rows: arelionMaster()}, &fakeLimits{}, client, reporter)
	desc, ok := vendor.Get("arelion")
	require.True(t, ok)

	svc.Process(context.Background(), desc, "job-3", "billing@example.com", []Upload{
		{Name: "arelion.xlsx", Data: arelionWorkbook(t)},
	})

	call := reporter.last(t)
	assert.False(t, call.success)
	assert.Contains(t, call.detail, "failed to upload rate file")

	// The staged file does not outlive a failed upload.
	_, err := os.Stat(filepath.Join(svc.cfg.TempPath, "arelion-job-3.csv"))
	assert.True(t, os.IsNotExist(err))
}
