package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath   string // MD2HTML_CONFIG: config file name or path
	MaxInputSize int64  // MD2HTML_MAX_INPUT_SIZE: input cap in bytes, -1 = unset
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":         true,
	"MD2HTML_MAX_INPUT_SIZE": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable or negative sizes are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("MD2HTML_CONFIG"),
		MaxInputSize: -1,
	}

	if size := os.Getenv("MD2HTML_MAX_INPUT_SIZE"); size != "" {
		if n, err := strconv.ParseInt(size, 10, 64); err == nil && n >= 0 {
			cfg.MaxInputSize = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values on top of the config file.
// Precedence: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.MaxInputSize >= 0 {
		cfg.Input.MaxSize = env.MaxInputSize
	}
}
