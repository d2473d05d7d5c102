package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"text/template"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/model"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

type Mailer interface {
	SendOrderConfirmation(ctx context.Context, order model.Order, email, name string) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	cfg  config.SMTPConfig
	send sendFunc
}

// NewMailer returns a Mailer that only logs when no SMTP host is configured.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return logMailer{}
	}
	return &smtpMailer{cfg: cfg, send: smtp.SendMail}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`From: {{.From}}
To: {{.To}}
Subject: Pedido {{.Order.ID}} entregado
MIME-Version: 1.0
Content-Type: text/plain; charset="UTF-8"

Hola{{if .Name}} {{.Name}}{{end}},

Tu pedido {{.Order.ID}} del {{.Order.Date}} fue entregado.

{{range .Order.Items}}- {{.Name}} ({{.Brand}}) x{{.Quantity}}: S/ {{.Subtotal.StringFixed 2}}
{{end}}
Total: S/ {{.Order.Total.StringFixed 2}}
Ahorro mayorista: S/ {{.Order.Savings.StringFixed 2}}
Método de pago: {{.Order.PaymentMethod}}
{{if .Order.DeliveryAddress}}Dirección: {{.Order.DeliveryAddress}}
{{end}}
Gracias por tu compra.
`))

// renderConfirmation encodes the recipient as a display-name address, so
// non-ASCII names survive the header.
func renderConfirmation(from, email, name string, order model.Order) ([]byte, error) {
	to := (&mail.Address{Name: name, Address: email}).String()
	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, struct {
		From  string
		To    string
		Name  string
		Order model.Order
	}{From: from, To: to, Name: name, Order: order})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, order model.Order, email, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := renderConfirmation(m.cfg.From, email, name, order)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.From, []string{email}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", email, err)
	}
	return nil
}

type logMailer struct{}

func (logMailer) SendOrderConfirmation(_ context.Context, order model.Order, email, name string) error {
	logger.Info("[SendOrderConfirmation] smtp disabled, skipping email",
		zap.String("order_id", order.ID),
		zap.String("to", email),
		zap.String("name", name))
	return nil
}
