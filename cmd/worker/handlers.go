package main

import (
	"github.com/hibiken/asynq"

	restaurantJob "eats-backend/internal/domains/restaurant/job"
	"eats-backend/internal/infrastructure/email"
	emailJob "eats-backend/internal/infrastructure/email/job"
	"eats-backend/internal/shared"
	"eats-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	verificationEmail *emailJob.VerificationEmailHandler
	expirePromotions  *restaurantJob.ExpirePromotionsHandler
}

func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	emailSvc := email.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	return &HandlerRegistry{
		verificationEmail: emailJob.NewVerificationEmailHandler(emailSvc),
		expirePromotions:  restaurantJob.NewExpirePromotionsHandler(c.RestaurantRepo),
	}
}

func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeSendVerificationEmail, r.verificationEmail)
	mux.Handle(shared.TypeExpirePromotions, r.expirePromotions)
}
