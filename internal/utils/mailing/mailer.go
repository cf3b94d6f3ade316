package mailing

import (
	"strconv"

	"recipeshare/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	// Mailer sends an HTML message to a single recipient.
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	smtpMailer struct{}
)

func NewMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	host := utils.GetConfig("SMTP_HOST")
	sender := utils.GetConfig("SMTP_AUTH_EMAIL")
	password := utils.GetConfig("SMTP_AUTH_PASSWORD")

	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", sender)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return gomail.NewDialer(host, port, sender, password).DialAndSend(msg)
}
