package main

import (
	"context"
	"net"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-dashboard-go/internal/config"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return strconv.Itoa(port)
}

func testConfig(port string) *config.Config {
	return &config.Config{
		Port:          port,
		AllowOrigins:  "*",
		DataBackend:   config.BackendMemory,
		LogFormat:     "json",
		ReqTimeoutSec: 5,
		ReminderLimit: 5,
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	log, hook := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, testConfig(freePort(t)), log)
	require.NoError(t, err)

	var seeded bool
	for _, e := range hook.AllEntries() {
		if e.Message == "memory backend seeded" {
			seeded = true
		}
	}
	assert.True(t, seeded, "the store was opened before shutdown")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := testConfig("not-a-port")

	err := run(context.Background(), cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}
