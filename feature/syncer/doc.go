// Package syncer is the Sync Orchestrator behind POST /sync.
//
// A call encodes the client batches (see records), makes sure the four tabs
// exist, then for Customers, Inventory, Orders and OrderLines in that order:
//
//  1. fetches the tab
//  2. brings its header to the current schema (a failed migration is logged
//     and the table is skipped for this call)
//  3. merges the batch under the table's policy
//  4. writes the result back when anything changed
//
// Finally all four tabs are read again and decoded, so the response always
// reflects what is stored rather than what was sent.
//
// # Policies
//
// Upsert writes the merged grid from A1. Overwrite clears every data row,
// rewrites the header and appends the batch; when snapshots are enabled the
// previous contents are archived to object storage first. Orders and
// OrderLines stay on Upsert unless sync.overwrite_orders is set.
//
// There is no locking and no rollback: concurrent calls against one spreadsheet
// race, and a failed call leaves earlier writes in place.
package syncer
