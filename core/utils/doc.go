// Package utils provides lenient conversions between spreadsheet cell values and Go types.
// Unparseable numbers convert to zero instead of failing, which the record codec relies on.
package utils
