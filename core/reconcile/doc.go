// Package reconcile treats a spreadsheet tab as a keyed table and provides the
// two pure operations the sync feature is built on.
//
// # Schema Migrator
//
// EnsureSchema brings a table's header in line with the expected column list.
// Known layout changes are described as data: a Rule names a table, a marker
// column whose absence triggers it, and the columns to insert at fixed positions
// with their default values. Rules are tried in order and the first match for the
// table wins; only when none fires does the generic fallback replace the header
// and right-pad rows. The order matters because rules insert mid-row while the
// fallback only appends.
//
// # Table Reconciler
//
// Merge folds a batch of rows into a table under one of two policies:
//
//   - Upsert: key-based replace-or-append; rows whose key is absent from the
//     batch are preserved in place.
//   - Overwrite: the batch becomes the entire data section.
//
// # Invariants
//
//   - Inputs are never mutated; results are deep copies.
//   - After EnsureSchema or Merge every data row is exactly as wide as the header.
//   - EnsureSchema is idempotent: a migrated table matches and is left alone.
//   - Upsert with unique keys is idempotent.
//
// # Usage
//
//	t := reconcile.FromGrid("Inventory", grid)
//	t, mig, err := reconcile.EnsureSchema(t, headers, rules)
//	t, sum := reconcile.Merge(t, rows, 0, reconcile.Upsert)
//	store.WriteTable(ctx, id, t.Name, t.Grid())
package reconcile
