package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of sheets.Store
type Store struct {
	mock.Mock
}

func (m *Store) FetchTable(ctx context.Context, spreadsheetID, tab string) ([][]string, error) {
	args := m.Called(ctx, spreadsheetID, tab)
	rows, _ := args.Get(0).([][]string)
	return rows, args.Error(1)
}

func (m *Store) WriteTable(ctx context.Context, spreadsheetID, tab string, rows [][]string) error {
	args := m.Called(ctx, spreadsheetID, tab, rows)
	return args.Error(0)
}

func (m *Store) ClearRange(ctx context.Context, spreadsheetID, tab string, fromRow int) error {
	args := m.Called(ctx, spreadsheetID, tab, fromRow)
	return args.Error(0)
}

func (m *Store) AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]string) error {
	args := m.Called(ctx, spreadsheetID, tab, rows)
	return args.Error(0)
}

func (m *Store) ListTabs(ctx context.Context, spreadsheetID string) ([]string, error) {
	args := m.Called(ctx, spreadsheetID)
	tabs, _ := args.Get(0).([]string)
	return tabs, args.Error(1)
}

func (m *Store) CreateTab(ctx context.Context, spreadsheetID, tab string) error {
	args := m.Called(ctx, spreadsheetID, tab)
	return args.Error(0)
}
