package utils

import (
	"fmt"
	"lms/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail notifies a freshly registered user. Skipped silently
// when no SendGrid key is configured.
func SendWelcomeEmail(toName, toEmail string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to %s</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s, your account has been created. Browse the catalog and start learning.</p>
				</div>
			</body>
		</html>
	`, config.AppConfig.EmailSenderName, toName)

	return send(toName, toEmail, "Welcome!", body)
}

// SendEnrollmentEmail confirms a successful course enrollment
func SendEnrollmentEmail(toName, toEmail, courseTitle string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment confirmed</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s, you now have access to <strong>%s</strong>. Happy learning!</p>
				</div>
			</body>
		</html>
	`, toName, courseTitle)

	return send(toName, toEmail, "Enrollment confirmed: "+courseTitle, body)
}

func send(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey == "" {
		log.Printf("SendGrid not configured, skipping email to %s", toEmail)
		return nil
	}

	from := mail.NewEmail(config.AppConfig.EmailSenderName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email to %s rejected with status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("email rejected with status %d", resp.StatusCode)
	}

	return nil
}
