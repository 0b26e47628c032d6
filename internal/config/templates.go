package config

import (
	"fmt"
	"os"
	"strings"
)

// Template returns a starter config for "server" (aocd) or "cli" (aocctl).
func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "server", "aocd":
		return serverTemplate, nil
	case "cli", "aocctl":
		return cliTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const serverTemplate = `name = "aocd"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
input_dir = "local/inputs"
year = 2023
concurrency = 0
max_input_bytes = 1048576
`

const cliTemplate = `year = 2023
input_dir = "local/inputs"
session_file = "local/session"
concurrency = 0
log_level = "info"
fetch_timeout = "15s"
retry_attempts = 3
expansion = 1000000

[bag]
red = 12
green = 13
blue = 14
`
