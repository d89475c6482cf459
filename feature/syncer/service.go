package syncer

import (
	"context"
	"errors"
	"fmt"

	"partflow-sync/core/logger"
	"partflow-sync/core/reconcile"
	"partflow-sync/core/sheets"
	"partflow-sync/feature/syncer/records"

	"go.uber.org/zap"
)

// ErrInvalidRequest marks requests rejected before any store call.
var ErrInvalidRequest = errors.New("invalid sync request")

// Request is one client sync call.
type Request struct {
	SpreadsheetID string             `json:"spreadsheetId" validate:"required"`
	Mode          string             `json:"mode" validate:"omitempty,oneof=upsert overwrite"`
	Customers     []records.Customer `json:"customers"`
	Items         []records.Item     `json:"items"`
	Orders        []records.Order    `json:"orders"`
}

// Result is the pulled view returned to the client.
type Result struct {
	Success         bool               `json:"success"`
	PulledItems     []records.Item     `json:"pulledItems"`
	PulledCustomers []records.Customer `json:"pulledCustomers"`
	PulledOrders    []records.Order    `json:"pulledOrders"`
	Tables          []TableReport      `json:"tables,omitempty"`
	Message         string             `json:"message"`
}

// TableReport describes what happened to one table.
type TableReport struct {
	Table          string              `json:"table"`
	Policy         reconcile.Policy    `json:"policy"`
	Migration      reconcile.Migration `json:"migration"`
	MigrationError string              `json:"migration_error,omitempty"`
	Summary        reconcile.Summary   `json:"summary"`
	Persisted      bool                `json:"persisted"`
	Snapshot       string              `json:"snapshot,omitempty"`
}

// Service runs sync calls against the spreadsheet store.
type Service struct {
	provider sheets.Provider
	archive  Archive
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a sync service. archive may be nil to disable snapshots.
func NewService(provider sheets.Provider, archive Archive, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		archive:  archive,
		cfg:      cfg,
		logger:   logger,
	}
}

// Sync pushes the request's batches and returns the freshly read tables.
//
// Every batch is encoded before the first write, so an invalid record aborts
// the call without touching the spreadsheet. Tables are processed in the fixed
// order Customers, Inventory, Orders, OrderLines. A store failure aborts the
// call; writes already made stay in place.
func (s *Service) Sync(ctx context.Context, req Request) (*Result, error) {
	policy, err := reconcile.ParsePolicy(req.Mode)
	if err != nil {
		syncRequests.WithLabelValues(req.Mode, "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	res, err := s.sync(ctx, req, policy)
	if err != nil {
		syncRequests.WithLabelValues(string(policy), "error").Inc()
		return nil, err
	}
	syncRequests.WithLabelValues(string(policy), "success").Inc()
	return res, nil
}

func (s *Service) sync(ctx context.Context, req Request, policy reconcile.Policy) (*Result, error) {
	if req.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet id is required", ErrInvalidRequest)
	}
	l := logger.WithSpreadsheet(s.logger, req.SpreadsheetID)

	batches, err := encodeBatches(req)
	if err != nil {
		return nil, err
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureTabs(ctx, store, req.SpreadsheetID, l); err != nil {
		return nil, err
	}

	reports := make([]TableReport, 0, len(records.Schemas()))
	for _, schema := range records.Schemas() {
		report, err := s.syncTable(ctx, store, req.SpreadsheetID, schema, batches[schema.Table], s.policyFor(schema.Table, policy), false, l)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	res, err := s.pull(ctx, store, req.SpreadsheetID)
	if err != nil {
		return nil, err
	}
	res.Tables = reports
	res.Message = fmt.Sprintf("Sync completed successfully (%s mode)", policy)

	l.Info("Sync completed",
		zap.String("mode", string(policy)),
		zap.Int("pulled_customers", len(res.PulledCustomers)),
		zap.Int("pulled_items", len(res.PulledItems)),
		zap.Int("pulled_orders", len(res.PulledOrders)),
	)
	return res, nil
}

// EnsureSchemas brings every table to its current layout without merging data.
// With dryRun nothing is written and missing tabs are reported as initialised.
func (s *Service) EnsureSchemas(ctx context.Context, spreadsheetID string, dryRun bool) ([]TableReport, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet id is required", ErrInvalidRequest)
	}
	l := logger.WithSpreadsheet(s.logger, spreadsheetID)

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}

	if !dryRun {
		if err := s.ensureTabs(ctx, store, spreadsheetID, l); err != nil {
			return nil, err
		}
	}

	reports := make([]TableReport, 0, len(records.Schemas()))
	for _, schema := range records.Schemas() {
		report, err := s.syncTable(ctx, store, spreadsheetID, schema, nil, reconcile.Upsert, dryRun, l)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// pull reads all four tables and decodes them for the client.
func (s *Service) pull(ctx context.Context, store sheets.Store, spreadsheetID string) (*Result, error) {
	grids := make(map[string][][]string, 4)
	for _, schema := range records.Schemas() {
		grid, err := store.FetchTable(ctx, spreadsheetID, schema.Table)
		if err != nil {
			return nil, err
		}
		grids[schema.Table] = grid
	}

	return &Result{
		Success:         true,
		PulledCustomers: records.DecodeCustomers(grids[records.TableCustomers]),
		PulledItems:     records.DecodeItems(grids[records.TableInventory]),
		PulledOrders:    records.DecodeOrders(grids[records.TableOrders], grids[records.TableOrderLines]),
	}, nil
}

// policyFor pins the order tables to Upsert unless configured otherwise.
func (s *Service) policyFor(table string, requested reconcile.Policy) reconcile.Policy {
	if requested == reconcile.Overwrite && !s.cfg.OverwriteOrders &&
		(table == records.TableOrders || table == records.TableOrderLines) {
		return reconcile.Upsert
	}
	return requested
}

func (s *Service) ensureTabs(ctx context.Context, store sheets.Store, spreadsheetID string, l *zap.Logger) error {
	tabs, err := store.ListTabs(ctx, spreadsheetID)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		present[t] = true
	}

	for _, schema := range records.Schemas() {
		if present[schema.Table] {
			continue
		}
		if err := store.CreateTab(ctx, spreadsheetID, schema.Table); err != nil {
			return err
		}
		l.Info("Created missing tab", zap.String("table", schema.Table))
	}
	return nil
}

// syncTable migrates, merges and persists a single table.
func (s *Service) syncTable(
	ctx context.Context,
	store sheets.Store,
	spreadsheetID string,
	schema records.Schema,
	batch [][]string,
	policy reconcile.Policy,
	dryRun bool,
	l *zap.Logger,
) (TableReport, error) {
	l = l.With(zap.String("table", schema.Table))
	report := TableReport{Table: schema.Table, Policy: policy}

	grid, err := store.FetchTable(ctx, spreadsheetID, schema.Table)
	if err != nil {
		if !dryRun || !errors.Is(err, sheets.ErrTabNotFound) {
			return report, err
		}
		grid = nil
	}
	current := reconcile.FromGrid(schema.Table, grid)

	migrated, mig, err := reconcile.EnsureSchema(current, schema.Headers, records.Rules)
	if err != nil {
		l.Warn("Schema migration failed, table left unchanged", zap.Error(err))
		schemaMigrations.WithLabelValues(schema.Table, "failed").Inc()
		report.MigrationError = err.Error()
		return report, nil
	}
	report.Migration = mig
	if mig.Changed() {
		schemaMigrations.WithLabelValues(schema.Table, string(mig.Kind)).Inc()
		l.Info("Schema migrated",
			zap.String("kind", string(mig.Kind)),
			zap.String("rule", mig.Rule),
			zap.Strings("added", mig.Added),
		)
	}

	final := migrated
	if len(batch) > 0 {
		final, report.Summary = reconcile.Merge(migrated, batch, schema.KeyIndex, policy)
		recordSummary(schema.Table, report.Summary.Updated, report.Summary.Appended, report.Summary.Discarded)
		l.Info("Merged batch",
			zap.String("policy", string(policy)),
			zap.Int("updated", report.Summary.Updated),
			zap.Int("appended", report.Summary.Appended),
			zap.Int("untouched", report.Summary.Untouched),
			zap.Int("discarded", report.Summary.Discarded),
		)
	}

	if dryRun || (!mig.Changed() && len(batch) == 0) {
		return report, nil
	}

	// Cells right of the current header are blanked so dropped columns do not
	// survive in the stored header and trigger the same migration next call.
	storedWidth := gridWidth(grid)

	if policy == reconcile.Overwrite && len(batch) > 0 {
		report.Snapshot = s.snapshot(ctx, spreadsheetID, current, l)
		if err := replaceTable(ctx, store, spreadsheetID, final, storedWidth); err != nil {
			return report, err
		}
	} else if err := store.WriteTable(ctx, spreadsheetID, schema.Table, padGrid(final.Grid(), storedWidth)); err != nil {
		return report, err
	}

	report.Persisted = true
	l.Debug("Table persisted", zap.Int("rows", len(final.Rows)))
	return report, nil
}

// replaceTable clears every data row, rewrites the header blanked out to
// storedWidth and appends the rows.
func replaceTable(ctx context.Context, store sheets.Store, spreadsheetID string, t reconcile.Table, storedWidth int) error {
	if err := store.ClearRange(ctx, spreadsheetID, t.Name, 2); err != nil {
		return err
	}
	if err := store.WriteTable(ctx, spreadsheetID, t.Name, padGrid([][]string{t.Header}, storedWidth)); err != nil {
		return err
	}
	return store.AppendRows(ctx, spreadsheetID, t.Name, t.Rows)
}

// gridWidth is the widest row of grid.
func gridWidth(grid [][]string) int {
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}
	return width
}

// padGrid right-pads every row of grid with empty cells up to width.
func padGrid(grid [][]string, width int) [][]string {
	for i, row := range grid {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			grid[i] = padded
		}
	}
	return grid
}

// snapshot archives the table as read. Failures are logged and ignored.
func (s *Service) snapshot(ctx context.Context, spreadsheetID string, t reconcile.Table, l *zap.Logger) string {
	if s.archive == nil || len(t.Rows) == 0 {
		return ""
	}
	key, err := s.archive.Save(ctx, spreadsheetID, t.Name, t.Grid())
	if err != nil {
		l.Warn("Snapshot failed, overwriting anyway", zap.Error(err))
		return ""
	}
	l.Info("Snapshot stored", zap.String("key", key))
	return key
}

func encodeBatches(req Request) (map[string][][]string, error) {
	customers, err := records.EncodeCustomers(req.Customers)
	if err != nil {
		return nil, err
	}
	items, err := records.EncodeItems(req.Items)
	if err != nil {
		return nil, err
	}
	orders, lines, err := records.EncodeOrders(req.Orders)
	if err != nil {
		return nil, err
	}
	return map[string][][]string{
		records.TableCustomers:  customers,
		records.TableInventory:  items,
		records.TableOrders:     orders,
		records.TableOrderLines: lines,
	}, nil
}
