package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hiresphere/hiresphere/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The session
// TTL is given in hours so config files stay readable.
type JsonConfig struct {
	Driver          string `json:"driver"`
	DSN             string `json:"dsn"`
	SessionSecret   string `json:"session_secret"`
	SessionTTLHours int    `json:"session_ttl_hours"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Absent file path means no JSON stage; only fields present in the file
// override the defaults. Read or unmarshal errors panic, matching the
// fail-fast behavior of the flag stage.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Driver != "" {
		cfg.Driver = jc.Driver
	}
	if jc.DSN != "" {
		cfg.DSN = jc.DSN
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionTTLHours > 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTLHours) * time.Hour
	}
}
