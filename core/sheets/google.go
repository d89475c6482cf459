package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"partflow-sync/core/utils"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// GoogleStore implements Store on the Google Sheets v4 API.
type GoogleStore struct {
	svc         *sheetsapi.Service
	inputOption string
}

// NewGoogleStore authenticates with the service account and builds the API client.
func NewGoogleStore(ctx context.Context, creds *Credentials, cfg Config) (*GoogleStore, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds.JSON, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentials, err)
	}

	// The token source outlives ctx, so it must not be bound to the request.
	tokens := jwtCfg.TokenSource(context.Background())
	return NewGoogleStoreWithOptions(ctx, cfg, option.WithTokenSource(tokens))
}

// NewGoogleStoreWithOptions builds the client from explicit API options.
func NewGoogleStoreWithOptions(ctx context.Context, cfg Config, opts ...option.ClientOption) (*GoogleStore, error) {
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &GoogleStore{svc: svc, inputOption: cfg.InputOption()}, nil
}

// FetchTable reads the tab with formatted values and stringifies every cell.
func (s *GoogleStore) FetchTable(ctx context.Context, spreadsheetID, tab string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, TabRange(tab)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if isMissingTab(err) {
		return nil, fmt.Errorf("failed to fetch %s: %w: %w", tab, ErrTabNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", tab, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = utils.ToString(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

// WriteTable writes rows from A1 with the configured input option.
func (s *GoogleStore) WriteTable(ctx context.Context, spreadsheetID, tab string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := s.svc.Spreadsheets.Values.Update(spreadsheetID, CellRange(tab, "A", 1), valueRange(rows)).
		ValueInputOption(s.inputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", tab, err)
	}
	return nil
}

// ClearRange clears rows fromRow and below.
func (s *GoogleStore) ClearRange(ctx context.Context, spreadsheetID, tab string, fromRow int) error {
	_, err := s.svc.Spreadsheets.Values.Clear(spreadsheetID, RowsFrom(tab, fromRow), &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", tab, err)
	}
	return nil
}

// AppendRows inserts rows after the last populated row.
func (s *GoogleStore) AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := s.svc.Spreadsheets.Values.Append(spreadsheetID, CellRange(tab, "A", 1), valueRange(rows)).
		ValueInputOption(s.inputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", tab, err)
	}
	return nil
}

// ListTabs returns the sheet titles of the spreadsheet.
func (s *GoogleStore) ListTabs(ctx context.Context, spreadsheetID string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tabs: %w", err)
	}

	tabs := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			tabs = append(tabs, sh.Properties.Title)
		}
	}
	return tabs, nil
}

// CreateTab adds a sheet titled tab.
func (s *GoogleStore) CreateTab(ctx context.Context, spreadsheetID, tab string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: tab},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create tab %s: %w", tab, err)
	}
	return nil
}

func valueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{MajorDimension: "ROWS", Values: values}
}

// isMissingTab reports whether err is the API's answer for a range that names
// a tab the spreadsheet does not have.
func isMissingTab(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusBadRequest {
		return false
	}
	return strings.Contains(apiErr.Message, "Unable to parse range")
}
