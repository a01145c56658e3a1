package resource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Init loads application properties from a YAML file on disk.
func Init(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}

// InitFromBytes loads application properties from an in-memory YAML document.
func InitFromBytes(content []byte) error {
	return Load(bytes.NewReader(content))
}

// Load replaces the current properties with the YAML read from r and resolves
// ${ENV} and ${ENV:default} placeholders against the process environment.
func Load(r io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to parse properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	properties = v
	return nil
}

// parsePropertiesMap reads recursively the YAML tree, flattening keys with dots
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment
// value, the default, or an empty string, in that order.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	if len(matches) > 2 {
		return matches[2]
	}
	return ""
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property value, or defaultValue when it is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	value := properties.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationOrDefault returns the property as a duration, or defaultValue when it is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := properties.GetDuration(key)
	if value <= 0 {
		return defaultValue
	}
	return value
}

// GetIntOrDefault returns the property as an int, or defaultValue when it is unset or not positive.
func GetIntOrDefault(key string, defaultValue int) int {
	value := properties.GetInt(key)
	if value <= 0 {
		return defaultValue
	}
	return value
}
