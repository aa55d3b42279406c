// Package config persists the SpaceTraders auth token to a small JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is used when no config path has been configured.
const DefaultPath = "config.json"

var FileWriteError = errors.New("unable to write config file")

// Data is the shape of the config file.
type Data struct {
	// Token is the agent's auth token for the SpaceTraders API.
	Token string `json:"token"`
}

// fileData keeps the token optional while decoding so a file without a token
// key can be told apart from one holding an empty token.
type fileData struct {
	Token *string `json:"token"`
}

// ReadConfigFile reads the config at path. The bool is false when the file is
// missing, unreadable, malformed or has no token key. Callers treat that as
// "no config yet" rather than a failure.
func ReadConfigFile(path string) (Data, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, false
	}

	fd := fileData{}
	if err := json.Unmarshal(raw, &fd); err != nil {
		return Data{}, false
	}

	if fd.Token == nil {
		return Data{}, false
	}

	return Data{Token: *fd.Token}, true
}

// ReadDefaultConfig reads the config from DefaultPath.
func ReadDefaultConfig() (Data, bool) {
	return ReadConfigFile(DefaultPath)
}

// WriteConfigFile creates or truncates the file at path and writes data as
// indented JSON. Every failure is reported as FileWriteError.
func WriteConfigFile(path string, data Data) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", FileWriteError, err)
	}

	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return fmt.Errorf("%w: %v", FileWriteError, err)
	}

	return nil
}

// WriteDefaultConfig writes data to DefaultPath.
func WriteDefaultConfig(data Data) error {
	return WriteConfigFile(DefaultPath, data)
}
