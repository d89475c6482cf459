package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store. Reads behave like the Sheets API:
// trailing empty cells and rows are omitted.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string]*memorySheet
}

type memorySheet struct {
	order []string
	tabs  map[string][][]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string]*memorySheet)}
}

// Seed replaces the contents of a tab, creating it when needed.
func (m *MemoryStore) Seed(spreadsheetID, tab string, grid [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh := m.sheet(spreadsheetID)
	if _, ok := sh.tabs[tab]; !ok {
		sh.order = append(sh.order, tab)
	}
	sh.tabs[tab] = copyGrid(grid)
}

// Snapshot returns the tab exactly as a fetch would, or nil when it does not exist.
func (m *MemoryStore) Snapshot(spreadsheetID, tab string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	grid, ok := m.sheet(spreadsheetID).tabs[tab]
	if !ok {
		return nil
	}
	return trimGrid(grid)
}

func (m *MemoryStore) FetchTable(_ context.Context, spreadsheetID, tab string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	grid, ok := m.sheet(spreadsheetID).tabs[tab]
	if !ok {
		return nil, fmt.Errorf("failed to fetch %s: %w", tab, ErrTabNotFound)
	}
	return trimGrid(grid), nil
}

func (m *MemoryStore) WriteTable(_ context.Context, spreadsheetID, tab string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh := m.sheet(spreadsheetID)
	grid, ok := sh.tabs[tab]
	if !ok {
		return fmt.Errorf("failed to write %s: %w", tab, ErrTabNotFound)
	}

	for i, row := range rows {
		if i >= len(grid) {
			grid = append(grid, nil)
		}
		target := grid[i]
		if len(target) < len(row) {
			grown := make([]string, len(row))
			copy(grown, target)
			target = grown
		}
		copy(target, row)
		grid[i] = target
	}
	sh.tabs[tab] = grid
	return nil
}

func (m *MemoryStore) ClearRange(_ context.Context, spreadsheetID, tab string, fromRow int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh := m.sheet(spreadsheetID)
	grid, ok := sh.tabs[tab]
	if !ok {
		return fmt.Errorf("failed to clear %s: %w", tab, ErrTabNotFound)
	}
	if fromRow < 1 {
		fromRow = 1
	}
	if fromRow-1 < len(grid) {
		sh.tabs[tab] = grid[:fromRow-1]
	}
	return nil
}

func (m *MemoryStore) AppendRows(_ context.Context, spreadsheetID, tab string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh := m.sheet(spreadsheetID)
	grid, ok := sh.tabs[tab]
	if !ok {
		return fmt.Errorf("failed to append to %s: %w", tab, ErrTabNotFound)
	}
	grid = trimGrid(grid)
	sh.tabs[tab] = append(grid, copyGrid(rows)...)
	return nil
}

func (m *MemoryStore) ListTabs(_ context.Context, spreadsheetID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sheet(spreadsheetID).order...), nil
}

func (m *MemoryStore) CreateTab(_ context.Context, spreadsheetID, tab string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh := m.sheet(spreadsheetID)
	if _, ok := sh.tabs[tab]; ok {
		return fmt.Errorf("failed to create tab %s: already exists", tab)
	}
	sh.order = append(sh.order, tab)
	sh.tabs[tab] = nil
	return nil
}

func (m *MemoryStore) sheet(id string) *memorySheet {
	sh, ok := m.sheets[id]
	if !ok {
		sh = &memorySheet{tabs: make(map[string][][]string)}
		m.sheets[id] = sh
	}
	return sh
}

// trimGrid copies grid without trailing empty cells and rows.
func trimGrid(grid [][]string) [][]string {
	out := make([][]string, 0, len(grid))
	for _, row := range grid {
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		out = append(out, append([]string{}, row[:end]...))
	}
	end := len(out)
	for end > 0 && len(out[end-1]) == 0 {
		end--
	}
	return out[:end]
}

func copyGrid(grid [][]string) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string{}, row...)
	}
	return out
}
