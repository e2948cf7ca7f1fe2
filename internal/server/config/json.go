package config

import (
	"encoding/json"
	"os"

	"tasksync/internal/flagx"
	"tasksync/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Durations accept both
// string values such as "30m" and integer nanoseconds (timex.Duration).
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	AuthRatePerMin        int            `json:"auth_rate_per_min"`
	AuthRateBurst         int            `json:"auth_rate_burst"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is given the
// Config is left untouched. An unreadable or invalid file panics: a server
// started with broken explicit configuration should not come up.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.AuthRatePerMin = c.AuthRatePerMin
	config.AuthRateBurst = c.AuthRateBurst
}
