package sheets

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrCredentials reports missing or unusable service account credentials.
var ErrCredentials = errors.New("service account credentials unavailable")

// Credential sources, in the order they are tried.
const (
	SourceEnvJSON = "env_json"
	SourceEnvB64  = "env_b64"
	SourceFile    = "file"
	SourceNone    = "none"
)

// requiredFields must be present for the JWT flow to work.
var requiredFields = []string{"client_email", "private_key", "token_uri"}

// Credentials is a parsed service account with a normalised private key.
type Credentials struct {
	// Source names where the credentials were found.
	Source string
	// JSON is the service account document with the normalised key.
	JSON []byte

	fields map[string]any
}

// ClientEmail returns the service account address.
func (c *Credentials) ClientEmail() string {
	return c.field("client_email")
}

// PrivateKey returns the normalised PEM private key.
func (c *Credentials) PrivateKey() string {
	return c.field("private_key")
}

// TokenURI returns the OAuth token endpoint of the account.
func (c *Credentials) TokenURI() string {
	return c.field("token_uri")
}

// Validate checks that the fields required for authentication are present.
func (c *Credentials) Validate() error {
	var missing []string
	for _, name := range requiredFields {
		if _, ok := c.fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields in service account JSON: %s",
			ErrCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Credentials) field(name string) string {
	s, _ := c.fields[name].(string)
	return s
}

// LoadCredentials finds the service account JSON. Raw JSON wins over base64,
// which wins over the file. A source that fails to parse is skipped.
func LoadCredentials(cfg Config) (*Credentials, error) {
	var errs []error

	if raw := strings.TrimSpace(cfg.CredentialsJSON); raw != "" {
		fields, err := parseJSON([]byte(stripQuotes(raw)))
		if err == nil {
			return newCredentials(SourceEnvJSON, fields)
		}
		errs = append(errs, fmt.Errorf("credentials_json: %w", err))
	}

	if b64 := strings.Join(strings.Fields(cfg.CredentialsB64), ""); b64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(b64)
		if err == nil {
			var fields map[string]any
			if fields, err = parseJSON(decoded); err == nil {
				return newCredentials(SourceEnvB64, fields)
			}
		}
		errs = append(errs, fmt.Errorf("credentials_b64: %w", err))
	}

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		switch {
		case err == nil:
			fields, err := parseJSON(data)
			if err == nil {
				return newCredentials(SourceFile, fields)
			}
			errs = append(errs, fmt.Errorf("credentials_file: %w", err))
		case !errors.Is(err, os.ErrNotExist):
			errs = append(errs, fmt.Errorf("credentials_file: %w", err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrCredentials, errors.Join(errs...))
	}
	return nil, fmt.Errorf("%w: not found in environment or file", ErrCredentials)
}

func newCredentials(source string, fields map[string]any) (*Credentials, error) {
	if key, ok := fields["private_key"].(string); ok {
		fields["private_key"] = NormalizeKey(key)
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentials, err)
	}
	return &Credentials{Source: source, JSON: data, fields: fields}, nil
}

// NormalizeKey repairs private keys mangled by environment variables:
// literal \n sequences become newlines and surrounding quotes are removed.
func NormalizeKey(key string) string {
	key = strings.ReplaceAll(key, `\n`, "\n")
	return stripQuotes(strings.TrimSpace(key))
}

func stripQuotes(s string) string {
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first != '"' && first != '\'') || first != last {
			break
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func parseJSON(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("empty document")
	}
	return fields, nil
}
