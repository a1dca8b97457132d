package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/doctorsportal/doctors-portal-api/internal/models"
)

// NotificationService sends booking confirmations through SendGrid.
// Dispatch is fire-and-forget: a relay outage is logged, never
// surfaced to the caller, and the booking stands regardless.
type NotificationService struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

type NotificationConfig struct {
	APIKey   string
	From     string
	FromName string
}

func NewNotificationService(cfg NotificationConfig) *NotificationService {
	svc := &NotificationService{
		from:     cfg.From,
		fromName: cfg.FromName,
	}
	if cfg.APIKey != "" {
		svc.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return svc
}

// SendBookingConfirmation dispatches the confirmation email in the
// background so the booking response never waits on the mail relay.
// The background task retries on its own; the booking stands whether
// or not the email ever leaves.
func (s *NotificationService) SendBookingConfirmation(booking models.Booking) {
	if s.client == nil {
		log.Println("Email not sent: SendGrid is not configured.")
		return
	}
	go s.send(booking)
}

func (s *NotificationService) send(booking models.Booking) {
	const attempts = 3
	for i := 1; i <= attempts; i++ {
		if err := s.sendOnce(booking); err == nil {
			log.Printf("Confirmation email sent to %s for %s on %s", booking.PatientEmail, booking.Treatment, booking.Date)
			return
		} else if i < attempts {
			log.Printf("Confirmation email to %s failed (attempt %d/%d): %v", booking.PatientEmail, i, attempts, err)
			time.Sleep(time.Duration(i) * 2 * time.Second)
		} else {
			log.Printf("Giving up on confirmation email to %s: %v", booking.PatientEmail, err)
		}
	}
}

func (s *NotificationService) sendOnce(booking models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject, plain, html := buildBookingEmail(booking)
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(booking.PatientName, booking.PatientEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

func buildBookingEmail(booking models.Booking) (subject, plain, html string) {
	subject = fmt.Sprintf("Your appointment for %s is confirmed", booking.Treatment)
	plain = fmt.Sprintf(
		"Hello %s,\n\nYour appointment for %s is confirmed on %s at %s.\n\nPlease visit us on time.\n\nDoctors Portal",
		booking.PatientName, booking.Treatment, booking.Date, booking.Slot,
	)
	html = fmt.Sprintf(
		`<div><h3>Your appointment for %s is confirmed</h3><p>Hello %s,</p><p>Your appointment on <b>%s</b> at <b>%s</b> is confirmed.</p><p>Please visit us on time.</p><p>Doctors Portal</p></div>`,
		booking.Treatment, booking.PatientName, booking.Date, booking.Slot,
	)
	return subject, plain, html
}
