package inputs

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// SessionEnv names the environment variable holding the session cookie value.
const SessionEnv = "AOC_SESSION"

// ResolveSession picks the session token: explicit value, then AOC_SESSION,
// then the first line of sessionFile. An empty result is not an error.
func ResolveSession(explicit, sessionFile string) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(SessionEnv)); v != "" {
		return v, nil
	}
	if strings.TrimSpace(sessionFile) == "" {
		return "", nil
	}
	return SessionFromFile(sessionFile)
}

// SessionFromFile reads a token from disk. A missing file yields "".
func SessionFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session file %s: %w", path, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}
