package config

import (
	"reflect"
	"strings"

	"partflow-sync/core/database"
	"partflow-sync/core/logger"
	"partflow-sync/core/server"
	"partflow-sync/core/sheets"
	"partflow-sync/core/storage"
	"partflow-sync/feature/syncer"
	"partflow-sync/feature/users"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the user database.
	Database database.Config `mapstructure:"database"`
	// Sheets holds the Google Sheets credentials and API options.
	Sheets sheets.Config `mapstructure:"sheets"`
	// Storage holds configuration for the snapshot object store (MinIO/S3).
	Storage storage.Config `mapstructure:"storage"`
	// Auth holds the admin seeding options of the user store.
	Auth users.Config `mapstructure:"auth"`
	// Sync holds orchestrator options.
	Sync syncer.Config `mapstructure:"sync"`
}

// legacyEnv maps keys to the variable names older deployments set.
var legacyEnv = map[string]string{
	"sheets.credentials_json": "GOOGLE_SERVICE_ACCOUNT_JSON",
	"sheets.credentials_b64":  "GOOGLE_SERVICE_ACCOUNT_B64",
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range legacyEnv {
		envName := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envName, name); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
