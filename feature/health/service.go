package health

import (
	"context"
	"time"

	"partflow-sync/core/sheets"
	"partflow-sync/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Test outcomes reported by the diagnostics.
const (
	Passed = "passed"
	Failed = "failed"
)

// Report is the body of GET /health.
type Report struct {
	Status            string          `json:"status"`
	Version           string          `json:"version"`
	ServerTimeUTC     string          `json:"server_time_utc"`
	DatabaseExists    bool            `json:"database_exists"`
	UsersTableColumns []string        `json:"users_table_columns"`
	UsersTableMissing []string        `json:"users_table_missing,omitempty"`
	DatabaseError     string          `json:"database_error,omitempty"`
	CredentialsSource string          `json:"credentials_source"`
	CredentialsError  string          `json:"credentials_error,omitempty"`
	ClientEmail       string          `json:"client_email,omitempty"`
	KeyInfo           *checks.KeyInfo `json:"key_info,omitempty"`
	RSASigningTest    string          `json:"rsa_signing_test,omitempty"`
	RSASigningError   string          `json:"rsa_signing_error,omitempty"`
	GoogleAuthTest    string          `json:"google_auth_test,omitempty"`
	GoogleAuthError   string          `json:"google_auth_error,omitempty"`
	SheetAccessTest   string          `json:"sheet_access_test,omitempty"`
	SheetAccessError  string          `json:"sheet_access_error,omitempty"`
}

// Service runs the diagnostics.
type Service struct {
	cfg      sheets.Config
	provider sheets.Provider
	db       *gorm.DB
	version  string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a health service. db may be nil when the user store is down.
func NewService(cfg sheets.Config, provider sheets.Provider, db *gorm.DB, version string, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		db:       db,
		version:  version,
		logger:   logger,
		now:      time.Now,
	}
}

// Report runs every check. Failures are recorded in the report, never returned.
func (s *Service) Report(ctx context.Context) *Report {
	report := &Report{
		Status:            "ok",
		Version:           s.version,
		ServerTimeUTC:     s.now().UTC().Format(time.RFC3339),
		UsersTableColumns: []string{},
		CredentialsSource: sheets.SourceNone,
	}

	s.checkDatabase(report)
	s.checkCredentials(ctx, report)
	return report
}

func (s *Service) checkDatabase(report *Report) {
	if s.db == nil {
		report.DatabaseError = "database not configured"
		return
	}
	users, err := checks.CheckUsersTable(s.db)
	if err != nil {
		report.DatabaseError = err.Error()
		return
	}
	report.DatabaseExists = users.Exists
	report.UsersTableColumns = users.Columns
	if len(users.Missing) > 0 {
		report.UsersTableMissing = users.Missing
	}
}

func (s *Service) checkCredentials(ctx context.Context, report *Report) {
	creds, err := sheets.LoadCredentials(s.cfg)
	if err != nil {
		report.CredentialsError = err.Error()
		return
	}

	report.CredentialsSource = creds.Source
	report.ClientEmail = creds.ClientEmail()
	info := checks.InspectKey(creds.PrivateKey())
	report.KeyInfo = &info

	if err := checks.SigningTest(creds.ClientEmail(), creds.PrivateKey(), creds.TokenURI()); err != nil {
		report.RSASigningTest = Failed
		report.RSASigningError = err.Error()
	} else {
		report.RSASigningTest = Passed
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	if err := checks.AuthTest(ctx, creds); err != nil {
		s.logger.Warn("Google auth test failed", zap.Error(err))
		report.GoogleAuthTest = Failed
		report.GoogleAuthError = err.Error()
		report.SheetAccessTest = "skipped (auth failed)"
		return
	}
	report.GoogleAuthTest = Passed

	if s.cfg.HealthSpreadsheetID == "" {
		report.SheetAccessTest = "skipped (no spreadsheet configured)"
		return
	}
	if _, err := checks.SheetAccess(ctx, s.provider, s.cfg.HealthSpreadsheetID); err != nil {
		report.SheetAccessTest = Failed
		report.SheetAccessError = err.Error()
		return
	}
	report.SheetAccessTest = Passed
}

func (s *Service) timeout() time.Duration {
	if s.cfg.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.cfg.TimeoutSeconds) * time.Second
}
