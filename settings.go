// Package spacedock holds the application settings and logging setup shared by
// the spacedock command line tools.
package spacedock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"spacedock/config"
	"spacedock/spacetraders"

	"github.com/spf13/viper"
)

const DefaultTokenFile = "token.secret"

type Settings struct {
	BaseURL    string `mapstructure:"BASE_URL"`
	ConfigPath string `mapstructure:"CONFIG_PATH"`
	TokenFile  string `mapstructure:"TOKEN_FILE"`
	Token      string `mapstructure:"SPACETRADERS_TOKEN"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
}

// LoadSettings reads an env style settings file at path, then lets
// environment variables override it. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	v.SetDefault("BASE_URL", spacetraders.DefaultBaseURL)
	v.SetDefault("CONFIG_PATH", config.DefaultPath)
	v.SetDefault("TOKEN_FILE", DefaultTokenFile)
	v.SetDefault("SPACETRADERS_TOKEN", "")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("unable to read settings file \"%s\": %w", path, err)
		}
	}

	s := Settings{}
	err = v.Unmarshal(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("unable to unmarshal settings: %w", err)
	}

	return s, nil
}

// BootstrapToken returns the token given out of band: SPACETRADERS_TOKEN if
// set, otherwise the trimmed contents of the token file.
func BootstrapToken(s Settings) (string, error) {
	if token := strings.TrimSpace(s.Token); token != "" {
		return token, nil
	}

	raw, err := os.ReadFile(s.TokenFile)
	if err != nil {
		return "", fmt.Errorf("%w: unable to read token file \"%s\": %v", spacetraders.MissingTokenError, s.TokenFile, err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("%w: token file \"%s\" is empty", spacetraders.MissingTokenError, s.TokenFile)
	}

	return token, nil
}
