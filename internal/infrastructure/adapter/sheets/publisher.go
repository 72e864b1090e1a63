package sheets

import (
	"context"
	"fmt"
	"os"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

var header = []any{"period_number", "total_amount", "category_name", "amount"}

// Publisher writes periodic summary rows to one tab per report
type Publisher struct {
	svc           *gsheet.Service
	spreadsheetID string
	logger        coreport.Logger
}

// NewPublisher creates a Sheets service from a service-account credentials file
func NewPublisher(ctx context.Context, spreadsheetID, credentialsFile string, logger coreport.Logger) (*Publisher, error) {
	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return NewPublisherWithService(svc, spreadsheetID, logger), nil
}

// NewPublisherWithService wraps an existing Sheets service
func NewPublisherWithService(svc *gsheet.Service, spreadsheetID string, logger coreport.Logger) *Publisher {
	return &Publisher{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger.With(map[string]any{"component": "sheets_publisher"}),
	}
}

// Publish replaces the content of the named tab, creating it when missing
func (p *Publisher) Publish(ctx context.Context, sheet string, rows []entity.PeriodRow) (string, error) {
	if p == nil || p.spreadsheetID == "" {
		return "", errs.ErrExportUnavailable
	}

	if err := p.ensureSheet(ctx, sheet); err != nil {
		return "", p.fail("ensure sheet", sheet, err)
	}

	if _, err := p.svc.Spreadsheets.Values.Clear(p.spreadsheetID, fmt.Sprintf("'%s'!A:D", sheet),
		&gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return "", p.fail("clear sheet", sheet, err)
	}

	values := make([][]any, 0, len(rows)+1)
	values = append(values, header)
	for _, r := range rows {
		values = append(values, []any{r.PeriodNumber, r.TotalAmount, r.CategoryName, r.Amount})
	}

	resp, err := p.svc.Spreadsheets.Values.Update(p.spreadsheetID, fmt.Sprintf("'%s'!A1", sheet),
		&gsheet.ValueRange{Values: values}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return "", p.fail("update sheet", sheet, err)
	}

	p.logger.Info("Published summary to sheet", map[string]any{
		"sheet": sheet,
		"rows":  len(rows),
		"range": resp.UpdatedRange,
	})
	return resp.UpdatedRange, nil
}

func (p *Publisher) ensureSheet(ctx context.Context, sheet string) error {
	spreadsheet, err := p.svc.Spreadsheets.Get(p.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return err
	}
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == sheet {
			return nil
		}
	}

	_, err = p.svc.Spreadsheets.BatchUpdate(p.spreadsheetID, &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: sheet},
			},
		}},
	}).Context(ctx).Do()
	return err
}

func (p *Publisher) fail(operation, sheet string, err error) error {
	p.logger.Error("Sheets request failed", map[string]any{
		"operation": operation,
		"sheet":     sheet,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s: %s", errs.ErrExportUnavailable, operation, err.Error())
}
