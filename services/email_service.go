package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
	"motomart-api/config"
	"motomart-api/models"
)

// EmailService notifies the admin about new seller submissions.
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

// SendSubmissionNotification mails the admin when a new "sell my bike" lead
// arrives. Callers treat failures as non-fatal.
func (es *EmailService) SendSubmissionNotification(submission *models.Submission) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.AdminEmail)
	m.SetHeader("Subject", fmt.Sprintf("New listing submission: %s %s (%d)", submission.Make, submission.Model, submission.Year))

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #d9480f; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        table { width: 100%%; border-collapse: collapse; }
        td { padding: 6px 4px; border-bottom: 1px solid #e9ecef; }
        td:first-child { font-weight: bold; width: 40%%; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>MotoMart</h1>
            <p>New Seller Submission</p>
        </div>
        <div class="content">
            <p>A new listing submission is waiting for review in the admin panel.</p>
            <table>
                <tr><td>Seller</td><td>%s</td></tr>
                <tr><td>Phone</td><td>%s</td></tr>
                <tr><td>Location</td><td>%s</td></tr>
                <tr><td>Bike</td><td>%s %s (%d)</td></tr>
                <tr><td>Condition</td><td>%s</td></tr>
                <tr><td>Km driven</td><td>%d</td></tr>
                <tr><td>Asking price</td><td>%d</td></tr>
                <tr><td>Photos</td><td>%d attached</td></tr>
            </table>
        </div>
    </div>
</body>
</html>`,
		submission.Name,
		submission.Phone,
		submission.Location,
		submission.Make,
		submission.Model,
		submission.Year,
		submission.Condition,
		submission.KmDriven,
		submission.Price,
		len(submission.Images),
	)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send submission notification: %w", err)
	}

	return nil
}
