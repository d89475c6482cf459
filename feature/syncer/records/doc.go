// Package records converts client records to spreadsheet rows and back.
//
// Every table has one current Schema, and Rules describes how older layouts
// gain the columns added since. Both are data and are consumed by
// core/reconcile.
//
// Encoding writes columns in schema order and fills absent optional fields
// from defaults.go. Decoding looks columns up by header name, pads missing
// cells, parses numbers leniently (unparseable means 0) and skips rows
// without a key.
package records
