// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"iranbazaar-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a newly registered user. Failures are the
// caller's problem to log; registration never depends on this.
func (es *EmailService) SendWelcomeEmail(email, username string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to %s!", es.config.FromName))

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, %s!</h2>
    <p>Your account is ready. You can now post listings, upload photos and
    reach buyers in your city.</p>
    <p>Happy selling,<br>The %s Team</p>
</body>
</html>`, username, es.config.FromName)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email to %s: %w", email, err)
	}

	return nil
}
