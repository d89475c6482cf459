// Package export writes the synced tables to an xlsx workbook for back-office
// reporting. It reads through the same sheets.Provider as the sync bridge and
// never migrates or writes the spreadsheet.
package export
