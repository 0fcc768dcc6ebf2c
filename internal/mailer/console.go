package mailer

import "log"

// ConsoleMailer logs messages instead of delivering them. Used when no
// SendGrid API key is configured.
type ConsoleMailer struct{}

var _ Mailer = (*ConsoleMailer)(nil)

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(msg *Message) error {
	log.Printf("[MAIL] To: %s <%s> | Subject: %s\n%s", msg.ToName, msg.ToAddress, msg.Subject, msg.TextContent)
	return nil
}
