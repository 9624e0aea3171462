package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"eats-backend/internal/infrastructure/email"
	"eats-backend/pkg/logger"
)

// VerificationEmailHandler delivers queued verification mails.
type VerificationEmailHandler struct {
	emailService email.Service
}

func NewVerificationEmailHandler(emailService email.Service) *VerificationEmailHandler {
	return &VerificationEmailHandler{
		emailService: emailService,
	}
}

func (h *VerificationEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var data email.VerificationEmailData
	if err := json.Unmarshal(task.Payload(), &data); err != nil {
		logger.Error("unmarshal verification email payload", err)
		return err
	}

	if err := h.emailService.SendVerificationEmail(ctx, data); err != nil {
		logger.Error("send verification email", err)
		return err
	}

	logger.Info("verification email sent", map[string]interface{}{
		"email": data.Email,
	})
	return nil
}
