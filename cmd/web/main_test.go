package main

import (
	"path/filepath"
	"testing"

	"github.com/mlahtinen/liftplan/internal/e2etest"
	"github.com/mlahtinen/liftplan/internal/testhelpers"
)

// startTestServer starts the application against a throwaway database and
// returns a ready test server.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "liftplan-test.sqlite3")
	lookupEnv := func(key string) (string, bool) {
		switch key {
		case "LIFTPLAN_ADDR":
			return "localhost:0", true
		case "LIFTPLAN_SQLITE_URL":
			return dbPath, true
		default:
			return "", false
		}
	}

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	return server
}
