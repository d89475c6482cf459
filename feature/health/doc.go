// Package health exposes deployment diagnostics.
//
// GET /health never fails: every check records "passed", "failed" or a
// "skipped (...)" reason in the report so a broken deployment can be read
// from a browser. Checks run in order:
//
//   - Database: whether the users table exists and which columns it has.
//   - Credentials: where the service account was found and the shape of its key.
//   - RSA signing: an offline JWT sign and verify with the private key.
//   - Google auth: a token exchange at the account's token_uri.
//   - Sheet access: listing the tabs of sheets.health_spreadsheet_id.
//
// GET /cron/keepalive answers scheduled pings.
package health
