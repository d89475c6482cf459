package checks

import (
	"context"
	"fmt"

	"partflow-sync/core/sheets"

	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// AuthTest exchanges a signed assertion for an access token at the
// credentials' token_uri.
func AuthTest(ctx context.Context, creds *sheets.Credentials) error {
	conf, err := google.JWTConfigFromJSON(creds.JSON, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return fmt.Errorf("failed to parse service account: %w", err)
	}
	if _, err := conf.TokenSource(ctx).Token(); err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}
	return nil
}

// SheetAccess lists the tabs of spreadsheetID through provider.
func SheetAccess(ctx context.Context, provider sheets.Provider, spreadsheetID string) ([]string, error) {
	store, err := provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.ListTabs(ctx, spreadsheetID)
}
