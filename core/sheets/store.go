package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrTabNotFound is returned when a tab does not exist in the spreadsheet.
var ErrTabNotFound = errors.New("tab not found")

// Store is the spreadsheet capability the sync bridge relies on.
// Rows are slices of cell text; the first row of a tab is its header.
type Store interface {
	// FetchTable reads every populated row of a tab.
	FetchTable(ctx context.Context, spreadsheetID, tab string) ([][]string, error)
	// WriteTable writes rows starting at A1. Cells outside rows are left as they are.
	WriteTable(ctx context.Context, spreadsheetID, tab string, rows [][]string) error
	// ClearRange clears every row from fromRow (1-based) to the end of the tab.
	ClearRange(ctx context.Context, spreadsheetID, tab string, fromRow int) error
	// AppendRows adds rows after the last populated row.
	AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]string) error
	// ListTabs returns the tab titles in display order.
	ListTabs(ctx context.Context, spreadsheetID string) ([]string, error)
	// CreateTab adds an empty tab.
	CreateTab(ctx context.Context, spreadsheetID, tab string) error
}

// Provider hands out a ready Store.
type Provider interface {
	Store(ctx context.Context) (Store, error)
}

// Static wraps an existing Store as a Provider.
func Static(s Store) Provider {
	return staticProvider{store: s}
}

type staticProvider struct {
	store Store
}

func (p staticProvider) Store(context.Context) (Store, error) {
	return p.store, nil
}

// TabRange returns the A1 range covering a whole tab.
func TabRange(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

// CellRange returns the A1 reference of a single cell in tab.
func CellRange(tab string, col string, row int) string {
	return fmt.Sprintf("%s!%s%d", TabRange(tab), col, row)
}

// RowsFrom returns the range covering rows fromRow onwards in every column.
func RowsFrom(tab string, fromRow int) string {
	if fromRow < 1 {
		fromRow = 1
	}
	return fmt.Sprintf("%s!A%d:%s", TabRange(tab), fromRow, LastColumn)
}

// LastColumn bounds cleared and fetched ranges. Every table schema fits within it.
const LastColumn = "Z"
