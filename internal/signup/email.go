package signup

import (
	"github.com/resend/resend-go/v3"
)

// Mailer sends the welcome email after a successful signup.
type Mailer interface {
	SendWelcome(to string) error
}

type resendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns nil when no API key is configured; the
// service treats a nil mailer as "skip sending".
func NewResendMailer(apiKey, from string) Mailer {
	if apiKey == "" {
		return nil
	}
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

const welcomeHTML = `
	<p>You're on the list.</p>
	<p>You'll get your exclusive code and priority access to new drops
	before anyone else.</p>
	<p>— NOIR</p>
`

func (m *resendMailer) SendWelcome(to string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Welcome to NOIR",
		Html:    welcomeHTML,
	}

	_, err := m.client.Emails.Send(params)
	return err
}
