package mail

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

// ConfirmationSender avisa os noivos por email quando um convidado
// confirma presença. Totalmente opcional: sem MAIL_HOST configurado ele
// vira no-op, e falha de SMTP é só logada — a confirmação já aconteceu.
type ConfirmationSender struct {
	Host     string
	Port     int
	User     string
	Password string
	NotifyTo string
}

func NewConfirmationSender(host string, port int, user, password, notifyTo string) *ConfirmationSender {
	return &ConfirmationSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		NotifyTo: notifyTo,
	}
}

func (s *ConfirmationSender) NotifyConfirmation(guest *entity.Guest) error {
	if s.Host == "" || s.NotifyTo == "" {
		return nil
	}

	body := fmt.Sprintf("%s confirmou presença! 🎉\n\nTelefone: %s\nPresente: %s\n", guest.Name, guest.Phone, guest.Presente)
	if len(guest.Acompanhantes) > 0 {
		body += fmt.Sprintf("Acompanhantes: %s\n", strings.Join(guest.Acompanhantes, ", "))
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("💍 %s confirmou presença no casamento", guest.Name))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("⚠️ Email: falha ao notificar confirmação de %s: %v", guest.Name, err)
		return nil
	}

	return nil
}
