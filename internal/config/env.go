package config

import (
	"os"
	"strconv"
	"strings"
)

// Server holds the settings the serve command resolves from the environment.
// CLI flags override these.
type Server struct {
	Host    string
	Port    int
	Profile string
}

// ServerFromEnv reads TOOLEMU_* server settings with localhost-only defaults.
func ServerFromEnv() Server {
	return Server{
		Host:    getEnvStr("TOOLEMU_HOST", "127.0.0.1"),
		Port:    getEnvInt("TOOLEMU_PORT", 9000),
		Profile: strings.ToLower(getEnvStr("TOOLEMU_PROFILE", "dev")),
	}
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvStr(k string, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
