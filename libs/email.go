package libs

import (
	"fmt"
	"html/template"
	"strings"

	"abc-retail/models"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.User != "" && c.Password != ""
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(cfg SMTPConfig) (*EmailService, error) {
	if !cfg.Enabled() {
		return nil, errors.New("SMTP configuration missing")
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   from,
	}, nil
}

var orderConfirmationTemplate = template.Must(template.New("order").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #1d4ed8; text-align: center; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        td, th { padding: 8px; border-bottom: 1px solid #eee; text-align: left; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">ABC Retail</div>
        <h2>Order Confirmation</h2>
        <p>Thank you for your order!</p>
        <p><strong>Order Number:</strong> {{.OrderID}}</p>
        <table>
            <tr><th>Product</th><th>Price</th><th>Qty</th><th>Subtotal</th></tr>
            {{range .Items}}<tr><td>{{.ProductName}}</td><td>{{.Price.StringFixed 2}}</td><td>{{.Quantity}}</td><td>{{.Subtotal.StringFixed 2}}</td></tr>
            {{end}}
        </table>
        <p><strong>Total Amount:</strong> R {{.Total.StringFixed 2}}</p>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
`))

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, details models.OrderDetails) error {
	if toEmail == "" || toEmail == models.GuestCustomer || !strings.Contains(toEmail, "@") {
		return nil
	}

	var body strings.Builder
	if err := orderConfirmationTemplate.Execute(&body, details); err != nil {
		return errors.Wrap(err, "render order confirmation")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - ABC Retail", details.OrderID))
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
