package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// stockAlertKeyPrefix is the prefix for all stock alert state keys
	stockAlertKeyPrefix = "stock_alert:"

	// stockAlertTTL is the maximum time an alert state can exist without being
	// cleared. If a product is deleted while its alert is open, the key expires
	// on its own instead of leaking. 7 days is long enough for any reasonable
	// restock cycle.
	stockAlertTTL = 7 * 24 * time.Hour
)

// StockAlertState represents the state of a low-stock alert
type StockAlertState string

const (
	// StockAlertStateNormal indicates the product is above its threshold
	StockAlertStateNormal StockAlertState = "normal"
	// StockAlertStateFiring indicates a low-stock alert is open for the product
	StockAlertStateFiring StockAlertState = "firing"
)

// StockAlertData holds the state information for an open stock alert
type StockAlertData struct {
	State         StockAlertState `json:"state"`
	FiredAt       *time.Time      `json:"fired_at,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	Threshold     int             `json:"threshold"`
}

// StockAlertStateManager manages low-stock alert states using Redis.
// It implements a state machine for the alert lifecycle:
//
//	Normal -> Firing (when stock drops to or below the threshold)
//	Firing -> Normal (when stock recovers above the threshold)
//
// While an alert is firing, repeated stock checks for the same product send
// no further notifications. Transitions are atomic so that concurrent checks
// across instances never produce duplicate alert emails.
type StockAlertStateManager struct {
	client *redis.Client
}

// NewStockAlertStateManager creates a new StockAlertStateManager instance
func NewStockAlertStateManager(client *redis.Client) *StockAlertStateManager {
	return &StockAlertStateManager{client: client}
}

// buildKey builds the Redis key for a product's alert state
// Format: stock_alert:{product_id}
func (m *StockAlertStateManager) buildKey(productID uint) string {
	return fmt.Sprintf("%s%d", stockAlertKeyPrefix, productID)
}

// GetState retrieves the current alert state for a product.
// Returns nil if no state exists (product is in implicit normal state).
func (m *StockAlertStateManager) GetState(ctx context.Context, productID uint) (*StockAlertData, error) {
	key := m.buildKey(productID)

	data, err := m.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // No state = implicit normal
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock alert state: %w", err)
	}

	var state StockAlertData
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stock alert state: %w", err)
	}

	return &state, nil
}

// TransitionToFiring atomically transitions a product's alert from Normal to
// Firing. Returns (true, nil) if this is a new firing and an alert email
// should be sent; (false, nil) if the alert is already open. The state is
// stored with stockAlertTTL as a leak guard.
func (m *StockAlertStateManager) TransitionToFiring(ctx context.Context, productID uint, quantity, threshold int, now time.Time) (isNewFiring bool, err error) {
	key := m.buildKey(productID)

	// Lua script for atomic read-check-write
	script := redis.NewScript(`
		local key = KEYS[1]
		local newState = ARGV[1]
		local ttlSeconds = tonumber(ARGV[2])

		local existing = redis.call('GET', key)
		if existing then
			local data = cjson.decode(existing)
			if data.state == 'firing' then
				return 0  -- Already firing, no change
			end
		end

		redis.call('SET', key, newState, 'EX', ttlSeconds)
		return 1  -- New firing
	`)

	state := StockAlertData{
		State:         StockAlertStateFiring,
		FiredAt:       &now,
		StockQuantity: quantity,
		Threshold:     threshold,
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return false, fmt.Errorf("failed to marshal stock alert state: %w", err)
	}

	ttlSeconds := int(stockAlertTTL.Seconds())
	result, err := script.Run(ctx, m.client, []string{key}, string(stateJSON), ttlSeconds).Int()
	if err != nil {
		return false, fmt.Errorf("failed to transition to firing: %w", err)
	}

	return result == 1, nil
}

// TransitionToNormal atomically transitions a product's alert from Firing to
// Normal. Returns (true, firedAt, nil) if an alert was open and has now been
// cleared; (false, nil, nil) if no alert was open. The state key is deleted
// on transition so the next threshold crossing fires a fresh alert.
// The get-and-delete is atomic to stay safe across instances.
func (m *StockAlertStateManager) TransitionToNormal(ctx context.Context, productID uint) (wasFiring bool, firedAt *time.Time, err error) {
	key := m.buildKey(productID)

	script := redis.NewScript(`
		local key = KEYS[1]
		local existing = redis.call('GET', key)
		if not existing then
			return nil  -- No state = was normal
		end
		redis.call('DEL', key)
		return existing
	`)

	result, err := script.Run(ctx, m.client, []string{key}).Result()
	if err != nil && err != redis.Nil {
		return false, nil, fmt.Errorf("failed to transition to normal: %w", err)
	}
	if err == redis.Nil || result == nil {
		return false, nil, nil // No state = was normal
	}

	var state StockAlertData
	if err := json.Unmarshal([]byte(result.(string)), &state); err != nil {
		return false, nil, fmt.Errorf("failed to unmarshal stock alert state: %w", err)
	}

	if state.State == StockAlertStateFiring {
		return true, state.FiredAt, nil
	}

	return false, nil, nil
}

// ClearState forcefully clears the alert state for a product.
// Use this when a product is deleted so stale keys don't accumulate.
// States also carry a TTL (stockAlertTTL) as a safety net against leaks.
func (m *StockAlertStateManager) ClearState(ctx context.Context, productID uint) error {
	key := m.buildKey(productID)

	if err := m.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear stock alert state: %w", err)
	}

	return nil
}
