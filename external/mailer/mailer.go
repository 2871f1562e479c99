package mailer

import (
	"context"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/Tanishksoam/speakhire/utils"
)

// Mailer delivers form notifications. Implementations are best-effort:
// callers log returned errors and move on, a failed delivery never undoes
// the write that triggered it.
type Mailer interface {
	SendInvitation(ctx context.Context, to, formTitle, link, token string) error
	SendAcknowledgement(ctx context.Context, to, formTitle string) error
}

func invitationContent(lang, formTitle, link, token string) (subject, body string, err error) {
	localizer := utils.NewLocalizer(lang)

	subject, err = localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "invitation_email.subject",
		TemplateData: map[string]interface{}{"Title": formTitle},
	})
	if err != nil {
		return "", "", err
	}

	body, err = localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "invitation_email.body",
		TemplateData: map[string]interface{}{
			"Title": formTitle,
			"Link":  link,
			"Token": token,
		},
	})
	if err != nil {
		return "", "", err
	}

	return subject, body, nil
}

func acknowledgementContent(lang, formTitle string) (subject, body string, err error) {
	localizer := utils.NewLocalizer(lang)

	subject, err = localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "acknowledgement_email.subject",
		TemplateData: map[string]interface{}{"Title": formTitle},
	})
	if err != nil {
		return "", "", err
	}

	body, err = localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "acknowledgement_email.body",
		TemplateData: map[string]interface{}{"Title": formTitle},
	})
	if err != nil {
		return "", "", err
	}

	return subject, body, nil
}

// LogMailer writes the mail content to the log instead of sending it. It
// stands in when no SendGrid key is configured so that publish flows keep
// working and the generated links stay discoverable from the log.
type LogMailer struct {
	lang string
}

func NewLogMailer(lang string) *LogMailer {
	return &LogMailer{lang: lang}
}

func (m *LogMailer) SendInvitation(ctx context.Context, to, formTitle, link, token string) error {
	subject, _, err := invitationContent(m.lang, formTitle, link, token)
	if err != nil {
		return fmt.Errorf("fail to build invitation content: %w", err)
	}

	log.WithFields(log.Fields{
		"prefix":  "mailer",
		"to":      to,
		"subject": subject,
		"link":    link,
	}).Info("email transport not configured, logging invitation instead")
	return nil
}

func (m *LogMailer) SendAcknowledgement(ctx context.Context, to, formTitle string) error {
	subject, _, err := acknowledgementContent(m.lang, formTitle)
	if err != nil {
		return fmt.Errorf("fail to build acknowledgement content: %w", err)
	}

	log.WithFields(log.Fields{
		"prefix":  "mailer",
		"to":      to,
		"subject": subject,
	}).Info("email transport not configured, logging acknowledgement instead")
	return nil
}
