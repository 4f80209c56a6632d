package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands.
const ExpectedEnvSchemaVersion = "1.0"

// ExampleAPIKey is the placeholder shipped in .env.example.
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"

// RequiredEnvVars must be present before the gateway starts.
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_URL",
}

// envWarning inspects the environment and returns a non-empty message when
// something is usable but probably wrong.
type envWarning func(getenv func(string) string) string

var envWarnings = []envWarning{
	func(getenv func(string) string) string {
		switch getenv("API_KEY") {
		case "":
			return "API_KEY is not set - the gateway API is reachable without a key"
		case ExampleAPIKey:
			return "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
		}
		return ""
	},
	func(getenv func(string) string) string {
		u, err := url.Parse(getenv("API_URL"))
		if err != nil || u.Scheme != "http" {
			return ""
		}
		if host := u.Hostname(); host == "localhost" || host == "127.0.0.1" || host == "::1" {
			return ""
		}
		return "API_URL uses plain http for a non-local backend"
	},
}

// ValidateEnv checks the schema version and the required variables.
func ValidateEnv() error {
	return validateEnv(os.Getenv)
}

func validateEnv(getenv func(string) string) error {
	switch v := getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case v != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if u, err := url.Parse(getenv("API_URL")); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_URL %q is not an absolute URL", getenv("API_URL"))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then collects warnings for
// settings that work but should be reviewed.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, check := range envWarnings {
		if msg := check(os.Getenv); msg != "" {
			warnings = append(warnings, msg)
		}
	}
	return warnings, nil
}
