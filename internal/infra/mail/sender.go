package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/welcome.html
var templatesFS embed.FS

var welcomeTmpl = template.Must(template.ParseFS(templatesFS, "templates/welcome.html"))

// dialer é satisfeito por *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

func (s *EmailSender) SendWelcome(to, name string) error {
	m, err := s.welcomeMessage(to, name)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func (s *EmailSender) welcomeMessage(to, name string) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, WelcomeEmailData{Name: name}); err != nil {
		return nil, fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Bem-vindo à Sua Pizza, %s!", name))
	m.SetBody("text/html", body.String())

	return m, nil
}
