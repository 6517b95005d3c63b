package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"repaired-site/internal/contact"
)

const contactMessageTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New contact request</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Company:</strong> {{.Company}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var contactMessageTmpl = template.Must(template.New("contact_message").Parse(contactMessageTemplate))

func buildContactMessageHTML(msg contact.Request) (string, error) {
	var buf bytes.Buffer
	if err := contactMessageTmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactMessage forwards a contact form submission to the sales inbox.
func (c *BrevoClient) SendContactMessage(ctx context.Context, to string, msg contact.Request) (string, error) {
	htmlBody, err := buildContactMessageHTML(msg)
	if err != nil {
		return "", err
	}
	return c.send(ctx, message{
		To:      brevoRecipient{Email: to},
		ReplyTo: &brevoRecipient{Email: msg.Email, Name: msg.Name},
		Subject: fmt.Sprintf("Contact request from %s (%s)", msg.Name, msg.Company),
		HTML:    htmlBody,
		Tags:    []string{"contact"},
	})
}
