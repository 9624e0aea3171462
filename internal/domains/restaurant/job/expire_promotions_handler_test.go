package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/internal/domains/restaurant/repository"
	"eats-backend/internal/shared"
)

type fakeExpirer struct {
	repository.RestaurantRepository
	gotNow  time.Time
	expired int64
	err     error
}

func (f *fakeExpirer) ExpirePromotions(_ context.Context, now time.Time) (int64, error) {
	f.gotNow = now
	return f.expired, f.err
}

func TestExpirePromotionsUsesPayloadTime(t *testing.T) {
	repo := &fakeExpirer{expired: 3}
	handler := NewExpirePromotionsHandler(repo)

	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(ExpirePromotionsPayload{Now: frozen})
	require.NoError(t, err)

	task := asynq.NewTask(shared.TypeExpirePromotions, payload)
	require.NoError(t, handler.ProcessTask(context.Background(), task))
	assert.Equal(t, frozen, repo.gotNow)
}

func TestExpirePromotionsDefaultsToNow(t *testing.T) {
	repo := &fakeExpirer{}
	handler := NewExpirePromotionsHandler(repo)

	payload, err := json.Marshal(ExpirePromotionsPayload{})
	require.NoError(t, err)

	before := time.Now()
	task := asynq.NewTask(shared.TypeExpirePromotions, payload)
	require.NoError(t, handler.ProcessTask(context.Background(), task))
	assert.False(t, repo.gotNow.Before(before))
}

func TestExpirePromotionsPropagatesError(t *testing.T) {
	repo := &fakeExpirer{err: assert.AnError}
	handler := NewExpirePromotionsHandler(repo)

	payload, err := json.Marshal(ExpirePromotionsPayload{})
	require.NoError(t, err)

	task := asynq.NewTask(shared.TypeExpirePromotions, payload)
	assert.Error(t, handler.ProcessTask(context.Background(), task))
}
