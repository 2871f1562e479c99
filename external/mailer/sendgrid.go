package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
)

// SendGridMailer delivers notifications through the SendGrid API.
type SendGridMailer struct {
	client     *sendgrid.Client
	sender     string
	senderName string
	lang       string
}

func NewSendGridMailer(apiKey, sender, senderName, lang string) *SendGridMailer {
	return &SendGridMailer{
		client:     sendgrid.NewSendClient(apiKey),
		sender:     sender,
		senderName: senderName,
		lang:       lang,
	}
}

func (m *SendGridMailer) SendInvitation(ctx context.Context, to, formTitle, link, token string) error {
	subject, body, err := invitationContent(m.lang, formTitle, link, token)
	if err != nil {
		return fmt.Errorf("fail to build invitation content: %w", err)
	}

	return m.send(ctx, to, subject, body)
}

func (m *SendGridMailer) SendAcknowledgement(ctx context.Context, to, formTitle string) error {
	subject, body, err := acknowledgementContent(m.lang, formTitle)
	if err != nil {
		return fmt.Errorf("fail to build acknowledgement content: %w", err)
	}

	return m.send(ctx, to, subject, body)
}

func (m *SendGridMailer) send(ctx context.Context, to, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(m.senderName, m.sender),
		subject,
		mail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", html.EscapeString(body)),
	)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		log.WithFields(log.Fields{
			"prefix": "mailer",
			"status": resp.StatusCode,
			"body":   resp.Body,
		}).Error("error response from sendgrid")
		return fmt.Errorf("fail to send email: status %d", resp.StatusCode)
	}

	log.WithFields(log.Fields{
		"prefix":  "mailer",
		"to":      to,
		"subject": subject,
		"status":  resp.StatusCode,
	}).Debug("email sent")

	return nil
}
