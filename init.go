package csviz

import (
	"os"
	"strconv"

	"github.com/ukaji3/csviz/pkg/logger"
	"github.com/ukaji3/csviz/pkg/logger/zerolog"
)

// DefaultLog is the process-wide logger, configured from the environment.
var DefaultLog logger.Logger

const (
	// Default configuration values
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "CSVIZ_LOG_LEVEL"
	envLogTimeFormat = "CSVIZ_LOG_TIME_FORMAT"
	envLogColor      = "CSVIZ_LOG_COLOR"
	envLogJSON       = "CSVIZ_LOG_JSON"
)

func init() {
	log, err := initLogger()
	if err != nil {
		panic(err)
	}

	DefaultLog = log
}

// initLogger creates a logger instance configured from environment variables.
func initLogger() (logger.Logger, error) {
	logColored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}

	logJSON, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	return zerolog.New(
		getEnvWithDefault(envLogLevel, defaultLogLevel),
		getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		logColored,
		logJSON,
	)
}

// getEnvWithDefault returns the value of the environment variable or the
// default if not set.
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value.
func parseBoolEnv(key, defaultValue string) (bool, error) {
	value := getEnvWithDefault(key, defaultValue)
	return strconv.ParseBool(value)
}
