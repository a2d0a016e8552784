package integration_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"skillbridge_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server. Tests are skipped entirely
// when DATABASE_URL does not point at a test database.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}

func futureDeadline() string {
	return time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339)
}
