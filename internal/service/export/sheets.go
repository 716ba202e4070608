package export

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/config"
)

const dailyReportRange = "Relatorio!A:F"

// DailyReport is one row of the daily production report.
type DailyReport struct {
	Date          time.Time
	ActiveBatches int
	TotalBirds    int
	EggsCollected int
	OpenAlerts    int
	LowStock      int
}

// ReportSink receives daily report rows. Satisfied by the Sheets exporter;
// the scheduler depends on this interface so tests can capture rows in memory.
type ReportSink interface {
	AppendDailyReport(ctx context.Context, report DailyReport) error
}

// SheetsExporter appends report rows to a configured Google Sheets
// spreadsheet.
type SheetsExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheetsExporter builds a Sheets-backed report sink.
func NewSheetsExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*SheetsExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &SheetsExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendDailyReport appends one report row to the spreadsheet.
func (e *SheetsExporter) AppendDailyReport(ctx context.Context, report DailyReport) error {
	values := []interface{}{
		report.Date.Format(csvDateLayout),
		report.ActiveBatches,
		report.TotalBirds,
		report.EggsCollected,
		report.OpenAlerts,
		report.LowStock,
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, dailyReportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report row: %w", err)
	}

	e.logger.Debug("daily report row appended", zap.String("range", dailyReportRange))
	return nil
}
