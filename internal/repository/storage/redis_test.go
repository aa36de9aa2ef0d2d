package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := storage.New(ctx, st.RedisAddr)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = client.Close()
		})

		require.NoError(t, client.Ping(ctx).Err())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// port 1 is reserved and never serves redis
		_, err := storage.New(ctx, "127.0.0.1:1")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to connect to Redis")
	})
}
