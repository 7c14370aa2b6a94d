package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvSchemaVersion is the .env layout generation this build understands.
// Bump it together with the documented variable list whenever variables
// are added or renamed.
const EnvSchemaVersion = "1.0"

// Required variables per binary. DB_* are deliberately absent from both
// lists: the API server degrades to the catalog cache file when no
// database is reachable.
var (
	// ServerEnvVars must be set for cmd/app to start
	ServerEnvVars = []string{"API_KEY"}

	// BotEnvVars must be set for cmd/discord to start
	BotEnvVars = []string{"DISCORD_TOKEN", "DISCORD_APP_ID"}
)

// placeholderValues are the literal example secrets from the setup docs.
// Seeing one in a live environment means the .env was copied without
// editing.
var placeholderValues = []struct {
	name  string
	value string
}{
	{"DB_PASSWORD", "change_this_secure_password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32"},
}

// CheckEnvSchema rejects an outdated .env layout. An unset
// ENV_SCHEMA_VERSION passes so the binaries keep working from plain
// environment variables without any .env file.
func CheckEnvSchema() error {
	declared := os.Getenv("ENV_SCHEMA_VERSION")
	if declared == "" || declared == EnvSchemaVersion {
		return nil
	}
	return fmt.Errorf("ENV_SCHEMA_VERSION is %s but this build expects %s, update your .env", declared, EnvSchemaVersion)
}

// MissingEnv reports which of the given variables are unset or empty,
// so a binary can name everything wrong with its environment at once.
func MissingEnv(required []string) []string {
	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// EnvWarnings flags settings that work but should never reach
// production: secrets copied verbatim from the setup docs and catalog
// endpoints downgraded to plain http.
func EnvWarnings() []string {
	var warnings []string

	for _, p := range placeholderValues {
		if os.Getenv(p.name) == p.value {
			warnings = append(warnings, fmt.Sprintf("%s is still the example value, replace it before deploying", p.name))
		}
	}

	if u := os.Getenv("CATALOG_URL"); strings.HasPrefix(u, "http://") {
		warnings = append(warnings, "CATALOG_URL uses plain http, item payloads can be tampered with in transit")
	}

	return warnings
}
