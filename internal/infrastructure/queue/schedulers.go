package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"eats-backend/internal/domains/restaurant/job"
	"eats-backend/internal/shared"
	"eats-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerExpirePromotionsJob()
}

// ================================================
// JOB: Expire Promotions (every 200 seconds)
// ================================================
func (s *Scheduler) registerExpirePromotionsJob() error {
	payload, err := json.Marshal(job.ExpirePromotionsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeExpirePromotions, payload)

	_, err = s.scheduler.Register(
		"@every 200s",
		task,
		asynq.Queue(shared.QueueSweeper),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register ExpirePromotions job", err)
		return err
	}

	logger.Info("✓ Registered ExpirePromotions: every 200 seconds", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
