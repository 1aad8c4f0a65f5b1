package database

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-dashboard-go/internal/config"
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/store/memory"
)

func TestOpenMemoryBackend(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := context.Background()

	client, closeFn, err := Open(ctx, &config.Config{DataBackend: config.BackendMemory}, logger)
	require.NoError(t, err)
	defer closeFn()

	row, err := client.FindOne(ctx, models.TableUsers, "matricula", memory.DemoMembership)
	require.NoError(t, err)
	assert.Equal(t, memory.DemoMembership, row["matricula"])
	assert.Equal(t, "memory backend seeded", hook.LastEntry().Message)
}

func TestOpenUnknownBackend(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, _, err := Open(context.Background(), &config.Config{DataBackend: "sheets"}, logger)
	assert.ErrorContains(t, err, "unknown data backend")
}
