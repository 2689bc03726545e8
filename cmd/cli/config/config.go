package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultAPIURL = "http://localhost:8080"
	tokenFileName = ".todo_token"
)

// APIURL returns the base URL for the Todo API.
// It can be overridden with the TODO_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("TODO_API_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultAPIURL
}

// TokenPath is where login stores the bearer token, ~/.todo_token unless
// TODO_TOKEN_FILE is set.
func TokenPath() string {
	if v := os.Getenv("TODO_TOKEN_FILE"); v != "" {
		return v
	}
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, tokenFileName)
}

func SaveToken(token string) error {
	return os.WriteFile(TokenPath(), []byte(token), 0600)
}

// LoadToken returns the stored token, or "" when nobody is logged in.
func LoadToken() string {
	data, err := os.ReadFile(TokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// RemoveToken deletes the stored token. It reports false if there was none.
func RemoveToken() (bool, error) {
	err := os.Remove(TokenPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
