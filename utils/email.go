package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"go-storefront/models"
)

// EmailService sends transactional mail through SendGrid. Without an API key
// it stays disabled and every send is a no-op, so the store works standalone.
type EmailService struct {
	apiKey string
	sender string
}

// NewEmailService returns an EmailService using the given credentials.
func NewEmailService(apiKey, sender string) *EmailService {
	return &EmailService{apiKey: apiKey, sender: sender}
}

// Enabled reports whether the service is configured to send.
func (es *EmailService) Enabled() bool { return es.apiKey != "" }

// SendEmail sends a plain-text email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if !es.Enabled() {
		return nil
	}
	from := mail.NewEmail("Storefront", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)
	resp, err := sendgrid.NewSendClient(es.apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send email: sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmation notifies a customer that their order was placed.
func (es *EmailService) SendOrderConfirmation(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	content := fmt.Sprintf(
		"Dear %s,\n\nThank you for your purchase! Your order (ID: %d) has been placed successfully.\n\nTotal Amount: $%.2f\n\nThank you for shopping with us!\n",
		order.UserName, order.ID, order.Total,
	)
	return es.SendEmail(toEmail, subject, content)
}

// SendStatusUpdate notifies a customer that their order status changed.
func (es *EmailService) SendStatusUpdate(toEmail string, order models.Order) error {
	subject := "Order Status Updated"
	content := fmt.Sprintf(
		"Dear %s,\n\nYour order (ID: %d) status has been updated to '%s'.\n\nThank you for shopping with us!\n",
		order.UserName, order.ID, order.Status,
	)
	return es.SendEmail(toEmail, subject, content)
}
