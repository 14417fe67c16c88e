package utils

import (
	"fmt"
	"net/smtp"
	"os"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SendEmail sends an email using SMTP
func SendEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUsername := os.Getenv("SMTP_USERNAME")
	smtpPassword := os.Getenv("SMTP_PASSWORD")

	message := fmt.Sprintf("Subject: %s\r\n"+
		"To: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", subject, to, body)

	auth := smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	err := smtp.SendMail(addr, auth, smtpUsername, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendOTP sends an OTP via email
func SendOTP(to, otp string) error {
	config := EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     587, // Default SMTP port
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your WorldHistorySim Registration OTP")

	body := fmt.Sprintf(`
		<h2>Welcome to WorldHistorySim!</h2>
		<p>Thank you for registering. Please use the following OTP to verify your email address:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 15 minutes.</p>
		<p>If you didn't request this OTP, please ignore this email.</p>
	`, otp)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendPasswordChangedEmail notifies a user that their password was reset
func SendPasswordChangedEmail(to string) error {
	subject := "Your WorldHistorySim password was changed"
	body := fmt.Sprintf(`
		<h2>Password changed</h2>
		<p>The password for your WorldHistorySim account was just reset.</p>
		<p>If this was you, no action is needed. You can sign in with your new password:</p>
		<p><a href="%s/login">Sign in</a></p>
		<p>If you did not request this change, reset your password again immediately.</p>
	`, os.Getenv("FRONTEND_URL"))

	return SendEmail(to, subject, body)
}

// SendWorldShareEmail mails a world summary to a collaborator
func SendWorldShareEmail(to, worldName, sender, summary string) error {
	config := EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     587,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s shared the world %q with you", sender, worldName))

	body := fmt.Sprintf(`
		<h2>%s</h2>
		<p>%s invited you to look at this world on WorldHistorySim.</p>
		<pre style="background: #f4f4f4; padding: 12px;">%s</pre>
	`, worldName, sender, summary)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
