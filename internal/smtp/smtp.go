package smtp

import (
	"fmt"

	"github.com/JMURv/courseguard/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendVerificationCode(toEmail, code string) error
	SendCriticalAlert(userEmail, eventType, details string) error
}

type EmailServer struct {
	server string
	port   int
	user   string
	pass   string
	admin  string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server: conf.Email.Server,
		port:   conf.Email.Port,
		user:   conf.Email.User,
		pass:   conf.Email.Pass,
		admin:  conf.Email.Admin,
	}
}

func (s *EmailServer) getMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) SendVerificationCode(toEmail, code string) error {
	m := s.getMessageBase("Your device verification code", toEmail)
	m.SetBody(
		"text/plain",
		fmt.Sprintf(
			"Your verification code is %v. It expires in 15 minutes.\n\n"+
				"If you did not try to sign in, change your password.",
			code,
		),
	)

	return s.send(m)
}

// SendCriticalAlert notifies the operator about a critical security
// event. Failures here must not block persisting the event itself.
func (s *EmailServer) SendCriticalAlert(userEmail, eventType, details string) error {
	m := s.getMessageBase("Critical security event", s.admin)
	m.SetBody(
		"text/plain",
		fmt.Sprintf("User: %v\nEvent: %v\nDetails: %v", userEmail, eventType, details),
	)

	return s.send(m)
}

func (s *EmailServer) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}
