package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/pkg/log"
)

// LoadEnv loads <runtime>/.env when it exists and returns a context carrying a
// debug logger.
func LoadEnv(t *testing.T) context.Context {
	t.Helper()

	envFile := filepath.Join(config.GetRuntimePath(), ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			t.Fatalf("loading %s: %v", envFile, err)
		}
	}

	ctx, flush := log.NewContextWithWriter(context.Background(), os.Stderr, true)
	t.Cleanup(flush)
	return ctx
}

// RequireEnv skips the test unless every key is set.
func RequireEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if os.Getenv(k) == "" {
			t.Skipf("%s is not set", k)
		}
	}
}
