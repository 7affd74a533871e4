package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"stayspot-api/config"
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

func (es *EmailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}

// SendWelcomeEmail greets a freshly signed-up user.
func (es *EmailService) SendWelcomeEmail(email, firstName string) error {
	htmlBody := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome to StaySpot, %s!</h2>
    <p>Your account is ready. Browse spots, book your next stay, and share
    reviews of the places you visit.</p>
    <p>Happy travels,<br>The StaySpot Team</p>
</body>
</html>`, firstName)

	return es.send(email, "Welcome to StaySpot", htmlBody)
}

// SendBookingConfirmation confirms a new reservation to the guest.
func (es *EmailService) SendBookingConfirmation(email, firstName, spotName, startDate, endDate string) error {
	htmlBody := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Booking confirmed</h2>
    <p>Hi %s,</p>
    <p>Your stay at <strong>%s</strong> is booked from %s to %s.</p>
    <p>Happy travels,<br>The StaySpot Team</p>
</body>
</html>`, firstName, spotName, startDate, endDate)

	return es.send(email, "StaySpot - Booking Confirmation", htmlBody)
}

// SendBookingReminder nudges a guest whose stay starts tomorrow.
func (es *EmailService) SendBookingReminder(email, firstName, spotName, startDate string) error {
	htmlBody := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Your stay starts soon</h2>
    <p>Hi %s,</p>
    <p>A reminder that your stay at <strong>%s</strong> begins on %s.</p>
    <p>Happy travels,<br>The StaySpot Team</p>
</body>
</html>`, firstName, spotName, startDate)

	return es.send(email, "StaySpot - Upcoming Stay Reminder", htmlBody)
}
