package sheets

// Config holds configuration for the Google Sheets backend.
type Config struct {
	// CredentialsJSON is the raw service account JSON.
	CredentialsJSON string `mapstructure:"credentials_json" default:""`
	// CredentialsB64 is the service account JSON, base64 encoded.
	CredentialsB64 string `mapstructure:"credentials_b64" default:""`
	// CredentialsFile is the path of a service account JSON file.
	CredentialsFile string `mapstructure:"credentials_file" default:"config/service-account.json"`
	// ValueInputOption controls how written cells are interpreted (RAW or USER_ENTERED).
	ValueInputOption string `mapstructure:"value_input_option" default:"USER_ENTERED"`
	// HealthSpreadsheetID is read by the health check when set.
	HealthSpreadsheetID string `mapstructure:"health_spreadsheet_id" default:""`
	// TimeoutSeconds bounds every API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// InputOption returns the configured value input option or USER_ENTERED.
func (c Config) InputOption() string {
	if c.ValueInputOption == "" {
		return "USER_ENTERED"
	}
	return c.ValueInputOption
}
