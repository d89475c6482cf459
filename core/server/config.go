package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the shared secret mobile clients send with every sync request.
	ApiKey string `mapstructure:"api_key" default:""`
	// ApiKeyHeader is the request header carrying the shared secret.
	ApiKeyHeader string `mapstructure:"api_key_header" default:"X-API-KEY"`
	// CorsOrigins is a comma separated list of allowed origins.
	CorsOrigins string `mapstructure:"cors_origins" default:"*"`
	// Version is reported by the health endpoint.
	Version string `mapstructure:"version" default:"1.2.0"`
}

// HasApiKey reports whether a shared secret has been configured.
// Without one every guarded route answers 401.
func (c Config) HasApiKey() bool {
	return c.ApiKey != ""
}

// HeaderName returns the configured secret header, falling back to X-API-KEY.
func (c Config) HeaderName() string {
	if c.ApiKeyHeader == "" {
		return "X-API-KEY"
	}
	return c.ApiKeyHeader
}
