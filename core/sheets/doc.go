// Package sheets is the spreadsheet capability used by the sync bridge.
//
// Store is the narrow interface the rest of the service depends on: read a tab,
// write from A1, clear from a row, append, list and create tabs. GoogleStore
// implements it on the Sheets v4 API, MemoryStore keeps tabs in process and
// mocks.Store is a testify mock.
//
// # Credentials
//
// LoadCredentials looks for a service account in this order:
//
//  1. sheets.credentials_json (raw JSON, optionally wrapped in quotes)
//  2. sheets.credentials_b64 (base64 of the JSON, whitespace ignored)
//  3. sheets.credentials_file
//
// The private key is normalised before use because environment variables often
// carry it with literal \n sequences or extra quotes.
//
// # Provider
//
// CachedProvider builds the API client once; concurrent first callers share the
// same build through singleflight. Table data is never cached.
package sheets
