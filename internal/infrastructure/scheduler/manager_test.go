package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/shared/logger"
)

func TestSchedulerManager_RunsExpiryJobImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewDiscard())
	require.NoError(t, err)

	ran := make(chan struct{}, 1)
	job := BatchJobFunc(func(ctx context.Context) (int, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 2, nil
	})

	require.NoError(t, m.RegisterContractExpiryJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "contract-expire", m.Jobs()[0].Name())

	m.Start()
	assert.True(t, m.IsStarted())

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("expiry job did not run")
	}

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	require.NoError(t, m.Stop())
}

func TestSchedulerManager_ProcessSwallowsJobErrors(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewDiscard())
	require.NoError(t, err)

	calls := 0
	m.processExpiredContracts(context.Background(), BatchJobFunc(func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("database unavailable")
	}))
	assert.Equal(t, 1, calls)
}
