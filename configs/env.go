package configs

import (
	_ "embed"
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Properties is the default properties document, used when
// PROPERTIES_FILE_PATH is not set.
//
//go:embed properties.yml
var Properties []byte

// ErrMissingCredential is returned when no OpenWeather API key is configured.
var ErrMissingCredential = errors.New("missing OPENWEATHER_API_KEY")

type EnvConfig struct {
	ApplicationName string
	APIKey          string
	LogLevel        string
	PropertiesPath  string
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set in the process win over
// the file.
func Load() (*EnvConfig, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.
func LoadFrom(dotenvPath string) (*EnvConfig, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()

	env := &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "go-weather"),
		APIKey:          strings.TrimSpace(v.GetString("OPENWEATHER_API_KEY")),
		LogLevel:        getStringOrDefault(v, "LOG_LEVEL", "info"),
		PropertiesPath:  v.GetString("PROPERTIES_FILE_PATH"),
	}

	if env.APIKey == "" {
		return nil, ErrMissingCredential
	}
	return env, nil
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return defaultValue
	}
	return value
}
