package mailer

import (
	"bytes"
	"embed"
	"text/template"
	"time"

	mail "github.com/go-mail/mail/v2"
)

//go:embed templates
var templateFS embed.FS

// SMTPMailer sends templated mail through an SMTP relay. Templates carry
// subject, plainBody and htmlBody sections.
type SMTPMailer struct {
	dialer *mail.Dialer
	sender string
}

func NewSMTPMailer(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		dialer: dialer,
		sender: sender,
	}
}

func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return err
	}

	subject := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(subject, "subject", data)
	if err != nil {
		return err
	}

	plainBody := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(plainBody, "plainBody", data)
	if err != nil {
		return err
	}

	htmlBody := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(htmlBody, "htmlBody", data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	return m.dialer.DialAndSend(msg)
}
