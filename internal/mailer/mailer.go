// Package mailer sends transactional mail over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/domain/entity"
)

// OrderConfirmation is the data rendered into the confirmation mail.
type OrderConfirmation struct {
	UserName   string
	OrderID    string
	Items      []entity.OrderItem
	TotalPrice float64
	CreatedAt  time.Time
}

// Mailer sends transactional messages.
type Mailer interface {
	// SendOrderConfirmation renders and sends the order-confirmation
	// mail to the purchaser.
	SendOrderConfirmation(to string, data OrderConfirmation) error
}

// smtpMailer implements Mailer over a gomail SMTP dialer.
type smtpMailer struct {
	cfg  *config.SMTPConfig
	tmpl *template.Template
}

// NewSMTPMailer creates a Mailer over the configured SMTP transport.
func NewSMTPMailer(cfg *config.SMTPConfig) (Mailer, error) {
	tmpl, err := template.New("order_confirmation").Parse(orderConfirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail template: %w", err)
	}
	return &smtpMailer{cfg: cfg, tmpl: tmpl}, nil
}

func (m *smtpMailer) SendOrderConfirmation(to string, data OrderConfirmation) error {
	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render mail body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your order confirmation")
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

const orderConfirmationTemplate = `<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <h2>Thanks for your order, {{.UserName}}!</h2>
  <p>Order <strong>{{.OrderID}}</strong> placed on {{.CreatedAt.Format "Jan 2, 2006"}}.</p>
  <table style="border-collapse:collapse;width:100%;">
    <tr style="text-align:left;border-bottom:1px solid #ddd;">
      <th style="padding:8px;">Course</th>
      <th style="padding:8px;">Price</th>
    </tr>
    {{range .Items}}
    <tr style="border-bottom:1px solid #eee;">
      <td style="padding:8px;">{{.CourseName}}</td>
      <td style="padding:8px;">{{printf "%.2f" .PriceAtPurchase}}</td>
    </tr>
    {{end}}
  </table>
  <p style="margin-top:16px;"><strong>Total: {{printf "%.2f" .TotalPrice}}</strong></p>
  <p>Your courses are ready in your library. Happy learning!</p>
</body>
</html>`
