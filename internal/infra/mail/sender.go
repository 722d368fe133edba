package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const leadApprovedTemplate = `
<html>
  <body>
    <p>Olá {{.VendorName}},</p>
    <p>Seu lead <strong>{{.LeadTitle}}</strong> foi aprovado e já está disponível no marketplace.</p>
    <p>Equipe LeadMarket</p>
  </body>
</html>`

const leadRejectedTemplate = `
<html>
  <body>
    <p>Olá {{.VendorName}},</p>
    <p>Seu lead <strong>{{.LeadTitle}}</strong> foi rejeitado.</p>
    <p>Motivo: {{.Reason}}</p>
    <p>Você pode corrigir os dados e reenviar para nova análise.</p>
    <p>Equipe LeadMarket</p>
  </body>
</html>`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendLeadApproved(to, vendorName, leadTitle string) error {
	data := LeadApprovedEmailData{VendorName: vendorName, LeadTitle: leadTitle}

	body, err := renderTemplate("lead_approved", leadApprovedTemplate, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Lead aprovado: %s", leadTitle)
	return s.send(to, subject, body)
}

func (s *EmailSender) SendLeadRejected(to, vendorName, leadTitle, reason string) error {
	if reason == "" {
		reason = "não informado"
	}
	data := LeadRejectedEmailData{VendorName: vendorName, LeadTitle: leadTitle, Reason: reason}

	body, err := renderTemplate("lead_rejected", leadRejectedTemplate, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Lead rejeitado: %s", leadTitle)
	return s.send(to, subject, body)
}

func renderTemplate(name, raw string, data interface{}) (string, error) {
	t, err := template.New(name).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
