package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envFile = ".env"

const (
	defaultBufferSize = 4096
	minBufferSize     = 512
	maxBufferSize     = 1048576
)

type config struct {
	addr string
	port string

	staticFolder string

	bufferSize int
	maxWorkers int

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	addr := getenv("ADDR", "127.0.0.1")

	port, err := parsePort()
	if err != nil {
		return nil, err
	}

	staticFolder := getenv("STATIC_FOLDER", "static")

	bufferSize := parseBufferSize()

	maxWorkers, err := parseMaxWorkers()
	if err != nil {
		return nil, err
	}

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	return &config{
		addr:         addr,
		port:         port,
		staticFolder: staticFolder,
		bufferSize:   bufferSize,
		maxWorkers:   maxWorkers,
		pprofEnabled: pprofEnabled,
		pprofPort:    pprofPort,
	}, nil
}

// loadEnvFile fills unset variables from .env; a missing file is fine.
func loadEnvFile() error {
	err := godotenv.Load(envFile)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", envFile, err)
}

func parsePort() (string, error) {
	raw := getenv("PORT", "8080")
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid PORT value %q: %w", raw, err)
	}
	return raw, nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minBufferSize || size > maxBufferSize {
		log.Printf("Invalid BUFFER_SIZE, falling back to %d", defaultBufferSize)
		return defaultBufferSize
	}
	return size
}

func parseMaxWorkers() (int, error) {
	raw := getenv("MAX_WORKERS", "1")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid MAX_WORKERS value %q: %w", raw, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("MAX_WORKERS must be at least 1")
	}
	return n, nil
}

// getenv treats a set but empty variable as unset.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	raw := getenv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, falling back to %t", key, raw, def)
		return def
	}
	return val
}
