package mailer

// Message is a single outbound email.
type Message struct {
	ToName      string
	ToAddress   string
	Subject     string
	TextContent string
	HTMLContent string
}

// Mailer is any service that can deliver one message.
type Mailer interface {
	Send(msg *Message) error
}
