package notify

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPConfig is the subset of the email config section the notifier needs.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

const submittedTemplate = `<h2>{{.Title}}</h2>
<p>Hi {{.Name}},</p>
<p>{{.Description}}</p>`

// EmailNotifier mails the notification to the applicant over SMTP.
type EmailNotifier struct {
	cfg  SMTPConfig
	tpl  *template.Template
	send func(m ...*gomail.Message) error
}

func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &EmailNotifier{
		cfg:  cfg,
		tpl:  template.Must(template.New("submitted").Parse(submittedTemplate)),
		send: d.DialAndSend,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, msg Message) error {
	if msg.Email == "" {
		return fmt.Errorf("notify: application %s has no email address", msg.ApplicationID)
	}

	var body strings.Builder
	err := n.tpl.Execute(&body, map[string]string{
		"Title":       msg.Notification.Title,
		"Description": msg.Notification.Description,
		"Name":        msg.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.From, n.cfg.FromName)
	m.SetAddressHeader("To", msg.Email, msg.Name)
	m.SetHeader("Subject", msg.Notification.Title)
	m.SetBody("text/html", body.String())

	if err := n.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
