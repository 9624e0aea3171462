package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"eats-backend/internal/domains/restaurant/repository"
	"eats-backend/pkg/logger"
)

type ExpirePromotionsPayload struct {
	Now time.Time `json:"now,omitempty"`
}

// ExpirePromotionsHandler clears the promotion flag of restaurants
// whose paid window has passed. Safe to run repeatedly; a sweep with
// nothing expired changes nothing.
type ExpirePromotionsHandler struct {
	restaurantRepo repository.RestaurantRepository
}

func NewExpirePromotionsHandler(restaurantRepo repository.RestaurantRepository) *ExpirePromotionsHandler {
	return &ExpirePromotionsHandler{
		restaurantRepo: restaurantRepo,
	}
}

func (h *ExpirePromotionsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ExpirePromotionsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("unmarshal expire promotions payload", err)
		return err
	}

	now := time.Now()
	if !payload.Now.IsZero() {
		now = payload.Now
	}

	expired, err := h.restaurantRepo.ExpirePromotions(ctx, now)
	if err != nil {
		logger.Error("expire promotions", err)
		return err
	}

	log.Info().
		Int64("expired", expired).
		Time("sweep_time", now).
		Msg("Promotion sweep finished")

	return nil
}
