package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestStockAlertDeduplication(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()
	now := time.Now().UTC()

	// First breach opens the alert.
	isNew, err := m.TransitionToFiring(ctx, 42, 3, 5, now)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Repeated breach is suppressed.
	isNew, err = m.TransitionToFiring(ctx, 42, 2, 5, now)
	require.NoError(t, err)
	assert.False(t, isNew)

	// Recovery closes the alert.
	wasFiring, firedAt, err := m.TransitionToNormal(ctx, 42)
	require.NoError(t, err)
	assert.True(t, wasFiring)
	require.NotNil(t, firedAt)

	// The next breach fires again.
	isNew, err = m.TransitionToFiring(ctx, 42, 2, 5, now)
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestStockAlertNormalWithoutOpenAlert(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()

	wasFiring, firedAt, err := m.TransitionToNormal(ctx, 7)
	require.NoError(t, err)
	assert.False(t, wasFiring)
	assert.Nil(t, firedAt)
}

func TestStockAlertStateIsolatedPerProduct(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()
	now := time.Now().UTC()

	isNew, err := m.TransitionToFiring(ctx, 1, 3, 5, now)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = m.TransitionToFiring(ctx, 2, 3, 5, now)
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestStockAlertGetState(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()
	now := time.Now().UTC()

	state, err := m.GetState(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, state)

	_, err = m.TransitionToFiring(ctx, 9, 1, 5, now)
	require.NoError(t, err)

	state, err = m.GetState(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, StockAlertStateFiring, state.State)
	assert.Equal(t, 1, state.StockQuantity)
	assert.Equal(t, 5, state.Threshold)
}

func TestStockAlertClearState(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()

	_, err := m.TransitionToFiring(ctx, 5, 2, 5, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, m.ClearState(ctx, 5))

	state, err := m.GetState(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestStockAlertConcurrentFiringSingleWinner(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	wins := make(chan bool, 10)
	errs := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			isNew, err := m.TransitionToFiring(ctx, 99, 3, 5, now)
			if err != nil {
				errs <- err
				return
			}
			wins <- isNew
		}()
	}
	wg.Wait()
	close(wins)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestStockAlertTransitionToNormalPropagatesRedisFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	defer client.Close()

	m := NewStockAlertStateManager(client)
	ctx := context.Background()

	isNew, err := m.TransitionToFiring(ctx, 13, 2, 5, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, isNew)

	// A connection failure must surface as an error, not as "was normal",
	// so callers do not clear an alert they never confirmed.
	mr.Close()

	wasFiring, firedAt, err := m.TransitionToNormal(ctx, 13)
	assert.Error(t, err)
	assert.False(t, wasFiring)
	assert.Nil(t, firedAt)
}
