package email

import (
	"context"
	"fmt"
	"net/smtp"

	"eats-backend/pkg/logger"
)

type VerificationEmailData struct {
	Email string
	Code  string
}

// Service sends transactional mail. Sending is fire-and-forget from
// the caller's point of view: failures are logged, never surfaced to
// the user whose request triggered the mail.
type Service interface {
	SendVerificationEmail(ctx context.Context, data VerificationEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPService(host, port, from string) Service {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendVerificationEmail(ctx context.Context, data VerificationEmailData) error {
	subject := "Verify your Eats account"
	body := fmt.Sprintf(`Hello,

Please use the following code to verify your email address:

    %s

If you did not create this account, you can safely ignore this message.`, data.Code)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		logger.Error("failed to send verification email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
