// Package config provides configuration management for the sync bridge.
//
// It uses godotenv to load an optional .env file and Viper to map environment
// variables onto the Config tree. Defaults come from the `default` struct tags
// of each section.
//
// # Configuration Structure
//
//   - Server: port, shared secret and its header, CORS origins, version
//   - Log: level and format
//   - Database: user store driver (sqlite or mysql) and connection details
//   - Sheets: service account sources, value input option, health spreadsheet
//   - Storage: MinIO/S3 snapshot archive
//   - Auth: admin account seeding
//   - Sync: orchestrator options
//
// Keys map to variables by upper-casing and replacing dots, so sheets.credentials_b64
// is read from SHEETS_CREDENTIALS_B64. GOOGLE_SERVICE_ACCOUNT_JSON and
// GOOGLE_SERVICE_ACCOUNT_B64 are accepted as fallbacks.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
