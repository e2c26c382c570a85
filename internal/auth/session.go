package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotLoggedIn is returned when no session token is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// sessionFileName is the session token file inside the config directory.
const sessionFileName = "session.token"

// SaveSession writes the session token to the config directory.
// The file is user-readable only.
func SaveSession(configDir, token string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	path := filepath.Join(configDir, sessionFileName)
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// LoadSession reads the stored session token from the config directory.
// Returns ErrNotLoggedIn if no session file exists.
func LoadSession(configDir string) (string, error) {
	path := filepath.Join(configDir, sessionFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("reading session: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

// ClearSession removes the stored session token. Clearing an absent
// session is not an error.
func ClearSession(configDir string) error {
	path := filepath.Join(configDir, sessionFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}
